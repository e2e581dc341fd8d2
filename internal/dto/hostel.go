package dto

import "github.com/KrishSharma007/hostel-management/internal/model"

// HostelAddressRequest is the hostel address payload.
type HostelAddressRequest struct {
	Building string  `json:"building" binding:"required,min=1"`
	Street   string  `json:"street"   binding:"required,min=2"`
	City     string  `json:"city"     binding:"required,min=2"`
	State    string  `json:"state"    binding:"required,min=2"`
	Pincode  string  `json:"pincode"  binding:"required,pincode"`
	Landmark *string `json:"landmark"`
}

// RoomCountsRequest gives the number of rooms to create per type.
type RoomCountsRequest struct {
	Single    int `json:"SINGLE"    binding:"gte=0"`
	Double    int `json:"DOUBLE"    binding:"gte=0"`
	Triple    int `json:"TRIPLE"    binding:"gte=0"`
	Dormitory int `json:"DORMITORY" binding:"gte=0"`
}

// ByType returns the counts keyed by room type, for reconciliation.
func (r *RoomCountsRequest) ByType() map[string]int {
	return map[string]int{
		model.RoomTypeSingle:    r.Single,
		model.RoomTypeDouble:    r.Double,
		model.RoomTypeTriple:    r.Triple,
		model.RoomTypeDormitory: r.Dormitory,
	}
}

// RoomCountsUpdate gives per-type target counts for an update. A nil field
// means "keep the current count" for that type.
type RoomCountsUpdate struct {
	Single    *int `json:"SINGLE"    binding:"omitempty,gte=0"`
	Double    *int `json:"DOUBLE"    binding:"omitempty,gte=0"`
	Triple    *int `json:"TRIPLE"    binding:"omitempty,gte=0"`
	Dormitory *int `json:"DORMITORY" binding:"omitempty,gte=0"`
}

// ByType returns only the explicitly supplied target counts.
func (r *RoomCountsUpdate) ByType() map[string]int {
	targets := make(map[string]int)
	if r.Single != nil {
		targets[model.RoomTypeSingle] = *r.Single
	}
	if r.Double != nil {
		targets[model.RoomTypeDouble] = *r.Double
	}
	if r.Triple != nil {
		targets[model.RoomTypeTriple] = *r.Triple
	}
	if r.Dormitory != nil {
		targets[model.RoomTypeDormitory] = *r.Dormitory
	}
	return targets
}

// CreateHostelRequest is the body for POST /api/hostels.
type CreateHostelRequest struct {
	Name      string               `json:"name"      binding:"required,min=2"`
	ContactNo *string              `json:"contactNo" binding:"omitempty,contactno"`
	Address   HostelAddressRequest `json:"address"   binding:"required"`
	Rooms     RoomCountsRequest    `json:"rooms"     binding:"required"`
}

// UpdateHostelRequest is the body for PUT /api/hostels/:id.
type UpdateHostelRequest struct {
	Name      *string               `json:"name"      binding:"omitempty,min=2"`
	ContactNo *string               `json:"contactNo" binding:"omitempty,contactno"`
	Address   *HostelAddressRequest `json:"address"   binding:"omitempty"`
	Rooms     *RoomCountsUpdate     `json:"rooms"     binding:"omitempty"`
}

// HostelResponse is a hostel decorated with the occupant counts the list
// view shows.
type HostelResponse struct {
	model.Hostel
	WardenCount    int `json:"wardenCount"`
	StudentCount   int `json:"studentCount"`
	AttendantCount int `json:"attendantCount"`
}

// RoomTypeStats is the per-type breakdown inside a hostel's stats.
type RoomTypeStats struct {
	Count     int `json:"count"`
	Capacity  int `json:"capacity"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

// HostelStatsResponse is one row of GET /api/hostels/stats.
type HostelStatsResponse struct {
	HostelID      uint                     `json:"hostelId"`
	Name          string                   `json:"name"`
	TotalRooms    int                      `json:"totalRooms"`
	TotalCapacity int                      `json:"totalCapacity"`
	TotalOccupied int                      `json:"totalOccupied"`
	Available     int                      `json:"available"`
	OccupancyRate float64                  `json:"occupancyRate"`
	RoomTypes     map[string]RoomTypeStats `json:"roomTypes"`
}
