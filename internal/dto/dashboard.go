package dto

// RoomTypeDistribution is one slice of the room-type pie chart.
type RoomTypeDistribution struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// HostelOccupancy is the per-hostel row inside the occupancy summary.
type HostelOccupancy struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	TotalRooms int    `json:"totalRooms"`
	Occupied   int    `json:"occupied"`
}

// OccupancySummaryResponse is the body of GET /api/dashboard/occupancy.
type OccupancySummaryResponse struct {
	TotalStudents        int64                  `json:"totalStudents"`
	TotalHostels         int                    `json:"totalHostels"`
	TotalRooms           int                    `json:"totalRooms"`
	OccupiedRooms        int                    `json:"occupiedRooms"`
	AvailableRooms       int                    `json:"availableRooms"`
	OccupancyRate        float64                `json:"occupancyRate"`
	RoomTypeDistribution []RoomTypeDistribution `json:"roomTypeDistribution"`
	Hostels              []HostelOccupancy      `json:"hostels"`
}

// FinancialSummaryResponse is the body of GET /api/dashboard/financial.
// TotalOverdue is totalGenerated minus totalPaid, not a sum over
// OVERDUE-status bills; the OVERDUE count is reported separately.
type FinancialSummaryResponse struct {
	TotalGenerated   float64 `json:"totalGenerated"`
	TotalPaid        float64 `json:"totalPaid"`
	TotalOverdue     float64 `json:"totalOverdue"`
	BillCount        int     `json:"billCount"`
	PaidBillCount    int     `json:"paidBillCount"`
	OverdueBillCount int     `json:"overdueBillCount"`
}
