package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
	"github.com/KrishSharma007/hostel-management/internal/repository"
)

// mocks bundles in-memory repositories that share state the way the
// database tables do, so cross-repository flows behave realistically.
type mocks struct {
	persons     *mockPersonRepo
	students    *mockStudentRepo
	wardens     *mockWardenRepo
	attendants  *mockAttendantRepo
	hostels     *mockHostelRepo
	rooms       *mockRoomRepo
	allocations *mockAllocationRepo
	assignments *mockAssignmentRepo
	duties      *mockDutyRepo
	bills       *mockBillRepo
}

func newMocks() *mocks {
	m := &mocks{
		persons:     &mockPersonRepo{persons: make(map[uint]*model.Person)},
		students:    &mockStudentRepo{students: make(map[uint]*model.Student)},
		wardens:     &mockWardenRepo{wardens: make(map[uint]*model.Warden)},
		attendants:  &mockAttendantRepo{attendants: make(map[uint]*model.Attendant)},
		hostels:     &mockHostelRepo{hostels: make(map[uint]*model.Hostel)},
		rooms:       &mockRoomRepo{rooms: make(map[uint]*model.Room)},
		allocations: &mockAllocationRepo{allocations: make(map[uint]*model.RoomAllocation)},
		assignments: &mockAssignmentRepo{assignments: make(map[uint]*model.HostelWardenAssignment)},
		duties:      &mockDutyRepo{duties: make(map[uint]*model.AttendantDuty)},
		bills:       &mockBillRepo{bills: make(map[uint]*model.MessBill)},
	}
	m.students.persons = m.persons
	m.students.allocations = m.allocations
	m.wardens.persons = m.persons
	m.wardens.assignments = m.assignments
	m.attendants.persons = m.persons
	m.attendants.duties = m.duties
	m.hostels.rooms = m.rooms
	m.hostels.allocations = m.allocations
	m.rooms.allocations = m.allocations
	return m
}

func (m *mocks) repo() *repository.Repository {
	return &repository.Repository{
		Person:     m.persons,
		Student:    m.students,
		Warden:     m.wardens,
		Attendant:  m.attendants,
		Hostel:     m.hostels,
		Room:       m.rooms,
		Allocation: m.allocations,
		Assignment: m.assignments,
		Duty:       m.duties,
		Bill:       m.bills,
	}
}

// addHostel seeds a hostel with rooms of the given types.
func (m *mocks) addHostel(name string, roomTypes ...string) *model.Hostel {
	hostel := &model.Hostel{Name: name}
	m.hostels.nextID++
	hostel.ID = m.hostels.nextID
	m.hostels.hostels[hostel.ID] = hostel
	for _, roomType := range roomTypes {
		m.addRoom(hostel.ID, roomType)
	}
	return hostel
}

func (m *mocks) addRoom(hostelID uint, roomType string) *model.Room {
	room := &model.Room{
		HostelID: hostelID,
		RoomType: roomType,
		Capacity: model.RoomCapacity[roomType],
	}
	m.rooms.nextID++
	room.ID = m.rooms.nextID
	m.rooms.rooms[room.ID] = room
	return room
}

func (m *mocks) addStudent(name string) *model.Student {
	person := &model.Person{Name: name, PersonType: model.PersonTypeStudent}
	m.persons.nextID++
	person.ID = m.persons.nextID
	m.persons.persons[person.ID] = person

	student := &model.Student{PersonID: person.ID, Person: person}
	m.students.nextID++
	student.ID = m.students.nextID
	m.students.students[student.ID] = student
	return student
}

func (m *mocks) addWarden(name string) *model.Warden {
	person := &model.Person{Name: name, PersonType: model.PersonTypeWarden}
	m.persons.nextID++
	person.ID = m.persons.nextID
	m.persons.persons[person.ID] = person

	warden := &model.Warden{PersonID: person.ID, Person: person}
	m.wardens.nextID++
	warden.ID = m.wardens.nextID
	m.wardens.wardens[warden.ID] = warden
	return warden
}

func (m *mocks) addAttendant(name string) *model.Attendant {
	person := &model.Person{Name: name, PersonType: model.PersonTypeAttendant}
	m.persons.nextID++
	person.ID = m.persons.nextID
	m.persons.persons[person.ID] = person

	attendant := &model.Attendant{PersonID: person.ID, Person: person}
	m.attendants.nextID++
	attendant.ID = m.attendants.nextID
	m.attendants.attendants[attendant.ID] = attendant
	return attendant
}

func (m *mocks) allocate(studentID, roomID uint, year string) *model.RoomAllocation {
	allocation := &model.RoomAllocation{
		StudentID:    studentID,
		RoomID:       roomID,
		AcademicYear: year,
		StartDate:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	m.allocations.nextID++
	allocation.ID = m.allocations.nextID
	m.allocations.allocations[allocation.ID] = allocation
	return allocation
}

// ── Mock PersonRepository ──

type mockPersonRepo struct {
	persons map[uint]*model.Person
	nextID  uint
}

func (m *mockPersonRepo) Create(_ context.Context, person *model.Person) error {
	m.nextID++
	person.ID = m.nextID
	if person.PersonalAddress != nil {
		person.PersonalAddress.PersonID = person.ID
	}
	m.persons[person.ID] = person
	return nil
}

func (m *mockPersonRepo) GetByID(_ context.Context, id uint) (*model.Person, error) {
	if p, ok := m.persons[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonRepo) Update(_ context.Context, person *model.Person) error {
	stored, ok := m.persons[person.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = person.Name
	stored.ContactNo = person.ContactNo
	return nil
}

func (m *mockPersonRepo) UpsertAddress(_ context.Context, address *model.PersonalAddress) error {
	if p, ok := m.persons[address.PersonID]; ok {
		p.PersonalAddress = address
	}
	return nil
}

func (m *mockPersonRepo) Delete(_ context.Context, id uint) error {
	delete(m.persons, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students    map[uint]*model.Student
	nextID      uint
	persons     *mockPersonRepo
	allocations *mockAllocationRepo
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	m.nextID++
	student.ID = m.nextID
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) byPersonID(personID uint) (*model.Student, error) {
	for _, s := range m.students {
		if s.PersonID == personID {
			if p, ok := m.persons.persons[s.PersonID]; ok {
				s.Person = p
			}
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByPersonID(_ context.Context, personID uint) (*model.Student, error) {
	return m.byPersonID(personID)
}

func (m *mockStudentRepo) GetDetailByPersonID(_ context.Context, personID uint) (*model.Student, error) {
	student, err := m.byPersonID(personID)
	if err != nil {
		return nil, err
	}
	student.RoomAllocations = m.allocations.byStudent(student.ID)
	return student, nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, unallocated bool) ([]model.Student, error) {
	var ids []uint
	for id := range m.students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Student
	for _, id := range ids {
		s := m.students[id]
		if unallocated && m.allocations.activeByStudent(s.ID) != nil {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	stored, ok := m.students[student.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Remark = student.Remark
	stored.EmergencyContact = student.EmergencyContact
	stored.FatherContact = student.FatherContact
	stored.MotherContact = student.MotherContact
	return nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

// ── Mock WardenRepository ──

type mockWardenRepo struct {
	wardens     map[uint]*model.Warden
	nextID      uint
	persons     *mockPersonRepo
	assignments *mockAssignmentRepo
}

func (m *mockWardenRepo) Create(_ context.Context, warden *model.Warden) error {
	m.nextID++
	warden.ID = m.nextID
	m.wardens[warden.ID] = warden
	return nil
}

func (m *mockWardenRepo) byPersonID(personID uint) (*model.Warden, error) {
	for _, w := range m.wardens {
		if w.PersonID == personID {
			if p, ok := m.persons.persons[w.PersonID]; ok {
				w.Person = p
			}
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWardenRepo) GetByPersonID(_ context.Context, personID uint) (*model.Warden, error) {
	return m.byPersonID(personID)
}

func (m *mockWardenRepo) GetDetailByPersonID(_ context.Context, personID uint) (*model.Warden, error) {
	warden, err := m.byPersonID(personID)
	if err != nil {
		return nil, err
	}
	warden.HostelAssignments = m.assignments.byWarden(warden.ID)
	return warden, nil
}

func (m *mockWardenRepo) GetByID(_ context.Context, id uint) (*model.Warden, error) {
	if w, ok := m.wardens[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWardenRepo) List(_ context.Context) ([]model.Warden, error) {
	var ids []uint
	for id := range m.wardens {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Warden
	for _, id := range ids {
		result = append(result, *m.wardens[id])
	}
	return result, nil
}

// ── Mock AttendantRepository ──

type mockAttendantRepo struct {
	attendants map[uint]*model.Attendant
	nextID     uint
	persons    *mockPersonRepo
	duties     *mockDutyRepo
}

func (m *mockAttendantRepo) Create(_ context.Context, attendant *model.Attendant) error {
	m.nextID++
	attendant.ID = m.nextID
	m.attendants[attendant.ID] = attendant
	return nil
}

func (m *mockAttendantRepo) byPersonID(personID uint) (*model.Attendant, error) {
	for _, a := range m.attendants {
		if a.PersonID == personID {
			if p, ok := m.persons.persons[a.PersonID]; ok {
				a.Person = p
			}
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendantRepo) GetByPersonID(_ context.Context, personID uint) (*model.Attendant, error) {
	return m.byPersonID(personID)
}

func (m *mockAttendantRepo) GetDetailByPersonID(_ context.Context, personID uint) (*model.Attendant, error) {
	attendant, err := m.byPersonID(personID)
	if err != nil {
		return nil, err
	}
	attendant.Duties = m.duties.byAttendant(attendant.ID)
	return attendant, nil
}

func (m *mockAttendantRepo) GetByID(_ context.Context, id uint) (*model.Attendant, error) {
	if a, ok := m.attendants[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendantRepo) List(_ context.Context) ([]model.Attendant, error) {
	var ids []uint
	for id := range m.attendants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Attendant
	for _, id := range ids {
		result = append(result, *m.attendants[id])
	}
	return result, nil
}

// ── Mock HostelRepository ──

type mockHostelRepo struct {
	hostels     map[uint]*model.Hostel
	nextID      uint
	rooms       *mockRoomRepo
	allocations *mockAllocationRepo
}

func (m *mockHostelRepo) Create(_ context.Context, hostel *model.Hostel) error {
	m.nextID++
	hostel.ID = m.nextID
	if hostel.HostelAddress != nil {
		hostel.HostelAddress.HostelID = hostel.ID
	}
	m.hostels[hostel.ID] = hostel
	return nil
}

func (m *mockHostelRepo) GetByID(_ context.Context, id uint) (*model.Hostel, error) {
	if h, ok := m.hostels[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHostelRepo) GetDetail(_ context.Context, id uint) (*model.Hostel, error) {
	h, ok := m.hostels[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	detail := *h
	detail.Rooms = m.rooms.byHostelWithActive(id, "")
	return &detail, nil
}

func (m *mockHostelRepo) List(_ context.Context) ([]model.Hostel, error) {
	return m.listWithRooms(), nil
}

func (m *mockHostelRepo) ListWithOccupancy(_ context.Context) ([]model.Hostel, error) {
	return m.listWithRooms(), nil
}

func (m *mockHostelRepo) listWithRooms() []model.Hostel {
	var ids []uint
	for id := range m.hostels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Hostel
	for _, id := range ids {
		h := *m.hostels[id]
		h.Rooms = m.rooms.byHostelWithActive(id, "")
		result = append(result, h)
	}
	return result
}

func (m *mockHostelRepo) Update(_ context.Context, hostel *model.Hostel) error {
	stored, ok := m.hostels[hostel.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = hostel.Name
	stored.ContactNo = hostel.ContactNo
	return nil
}

func (m *mockHostelRepo) UpdateAddress(_ context.Context, address *model.HostelAddress) error {
	if h, ok := m.hostels[address.HostelID]; ok {
		h.HostelAddress = address
	}
	return nil
}

func (m *mockHostelRepo) Delete(_ context.Context, id uint) error {
	delete(m.hostels, id)
	return nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms       map[uint]*model.Room
	nextID      uint
	allocations *mockAllocationRepo
}

func (m *mockRoomRepo) CreateBatch(_ context.Context, rooms []model.Room) error {
	for i := range rooms {
		m.nextID++
		rooms[i].ID = m.nextID
		room := rooms[i]
		m.rooms[room.ID] = &room
	}
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id uint) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) GetForUpdate(ctx context.Context, id uint) (*model.Room, error) {
	return m.GetByID(ctx, id)
}

func (m *mockRoomRepo) ListByHostel(_ context.Context, hostelID uint) ([]model.Room, error) {
	return m.byHostelWithActive(hostelID, ""), nil
}

func (m *mockRoomRepo) ListByHostelAndType(_ context.Context, hostelID uint, roomType string) ([]model.Room, error) {
	return m.byHostelWithActive(hostelID, roomType), nil
}

func (m *mockRoomRepo) byHostelWithActive(hostelID uint, roomType string) []model.Room {
	var ids []uint
	for id, r := range m.rooms {
		if r.HostelID != hostelID {
			continue
		}
		if roomType != "" && r.RoomType != roomType {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Room
	for _, id := range ids {
		room := *m.rooms[id]
		room.Allocations = m.allocations.activeByRoom(id)
		result = append(result, room)
	}
	return result
}

func (m *mockRoomRepo) DeleteByIDs(_ context.Context, ids []uint) error {
	for _, id := range ids {
		delete(m.rooms, id)
	}
	return nil
}

func (m *mockRoomRepo) CountByType(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, r := range m.rooms {
		counts[r.RoomType]++
	}
	return counts, nil
}

// ── Mock AllocationRepository ──

type mockAllocationRepo struct {
	allocations map[uint]*model.RoomAllocation
	nextID      uint
}

func (m *mockAllocationRepo) Create(_ context.Context, allocation *model.RoomAllocation) error {
	m.nextID++
	allocation.ID = m.nextID
	m.allocations[allocation.ID] = allocation
	return nil
}

func (m *mockAllocationRepo) activeByStudent(studentID uint) *model.RoomAllocation {
	for _, a := range m.allocations {
		if a.StudentID == studentID && a.EndDate == nil {
			return a
		}
	}
	return nil
}

func (m *mockAllocationRepo) byStudent(studentID uint) []model.RoomAllocation {
	var result []model.RoomAllocation
	for _, a := range m.allocations {
		if a.StudentID == studentID {
			result = append(result, *a)
		}
	}
	return result
}

func (m *mockAllocationRepo) activeByRoom(roomID uint) []model.RoomAllocation {
	var result []model.RoomAllocation
	for _, a := range m.allocations {
		if a.RoomID == roomID && a.EndDate == nil {
			result = append(result, *a)
		}
	}
	return result
}

func (m *mockAllocationRepo) GetActiveByStudent(_ context.Context, studentID uint) (*model.RoomAllocation, error) {
	if a := m.activeByStudent(studentID); a != nil {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAllocationRepo) Close(_ context.Context, id uint, endDate time.Time) error {
	if a, ok := m.allocations[id]; ok {
		a.EndDate = &endDate
	}
	return nil
}

func (m *mockAllocationRepo) CountActiveByRoom(_ context.Context, roomID uint) (int64, error) {
	return int64(len(m.activeByRoom(roomID))), nil
}

func (m *mockAllocationRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, a := range m.allocations {
		if a.EndDate == nil {
			n++
		}
	}
	return n, nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[uint]*model.HostelWardenAssignment
	nextID      uint
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.HostelWardenAssignment) error {
	m.nextID++
	assignment.ID = m.nextID
	m.assignments[assignment.ID] = assignment
	return nil
}

func (m *mockAssignmentRepo) byWarden(wardenID uint) []model.HostelWardenAssignment {
	var result []model.HostelWardenAssignment
	for _, a := range m.assignments {
		if a.WardenID == wardenID {
			result = append(result, *a)
		}
	}
	return result
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id uint) (*model.HostelWardenAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) GetActiveByWarden(_ context.Context, wardenID uint) (*model.HostelWardenAssignment, error) {
	for _, a := range m.assignments {
		if a.WardenID == wardenID && a.EndDate == nil {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) Close(_ context.Context, id uint, endDate time.Time) error {
	if a, ok := m.assignments[id]; ok {
		a.EndDate = &endDate
	}
	return nil
}

func (m *mockAssignmentRepo) List(_ context.Context) ([]model.HostelWardenAssignment, error) {
	var result []model.HostelWardenAssignment
	for _, a := range m.assignments {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByHostel(_ context.Context, hostelID uint) ([]model.HostelWardenAssignment, error) {
	var result []model.HostelWardenAssignment
	for _, a := range m.assignments {
		if a.HostelID == hostelID {
			result = append(result, *a)
		}
	}
	sortAssignmentsNewestFirst(result)
	return result, nil
}

func (m *mockAssignmentRepo) ListByWarden(_ context.Context, wardenID uint) ([]model.HostelWardenAssignment, error) {
	result := m.byWarden(wardenID)
	sortAssignmentsNewestFirst(result)
	return result, nil
}

func sortAssignmentsNewestFirst(assignments []model.HostelWardenAssignment) {
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].AssignmentDate.After(assignments[j].AssignmentDate)
	})
}

// ── Mock DutyRepository ──

type mockDutyRepo struct {
	duties map[uint]*model.AttendantDuty
	nextID uint
}

func (m *mockDutyRepo) Create(_ context.Context, duty *model.AttendantDuty) error {
	m.nextID++
	duty.ID = m.nextID
	m.duties[duty.ID] = duty
	return nil
}

func (m *mockDutyRepo) CreateBatch(ctx context.Context, duties []model.AttendantDuty) error {
	for i := range duties {
		duty := duties[i]
		if err := m.Create(ctx, &duty); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockDutyRepo) byAttendant(attendantID uint) []model.AttendantDuty {
	var result []model.AttendantDuty
	for _, d := range m.duties {
		if d.AttendantID == attendantID {
			result = append(result, *d)
		}
	}
	return result
}

func (m *mockDutyRepo) GetByID(_ context.Context, id uint) (*model.AttendantDuty, error) {
	if d, ok := m.duties[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDutyRepo) List(_ context.Context) ([]model.AttendantDuty, error) {
	var result []model.AttendantDuty
	for _, d := range m.duties {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDutyRepo) ListByAttendant(_ context.Context, attendantID uint) ([]model.AttendantDuty, error) {
	result := m.byAttendant(attendantID)
	sortDutiesNewestFirst(result)
	return result, nil
}

func (m *mockDutyRepo) ListByHostel(_ context.Context, hostelID uint) ([]model.AttendantDuty, error) {
	var result []model.AttendantDuty
	for _, d := range m.duties {
		if d.HostelID == hostelID {
			result = append(result, *d)
		}
	}
	sortDutiesNewestFirst(result)
	return result, nil
}

func sortDutiesNewestFirst(duties []model.AttendantDuty) {
	sort.Slice(duties, func(i, j int) bool {
		return duties[i].DutyDate.After(duties[j].DutyDate)
	})
}

func (m *mockDutyRepo) Update(_ context.Context, duty *model.AttendantDuty) error {
	stored, ok := m.duties[duty.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.DutyType = duty.DutyType
	stored.ShiftType = duty.ShiftType
	stored.DutyDate = duty.DutyDate
	return nil
}

func (m *mockDutyRepo) Delete(_ context.Context, id uint) error {
	delete(m.duties, id)
	return nil
}

func (m *mockDutyRepo) DeleteByAttendant(_ context.Context, attendantID uint) error {
	for id, d := range m.duties {
		if d.AttendantID == attendantID {
			delete(m.duties, id)
		}
	}
	return nil
}

// ── Mock BillRepository ──

type mockBillRepo struct {
	bills  map[uint]*model.MessBill
	nextID uint
}

func (m *mockBillRepo) Create(_ context.Context, bill *model.MessBill) error {
	m.nextID++
	bill.ID = m.nextID
	m.bills[bill.ID] = bill
	return nil
}

func (m *mockBillRepo) GetByID(_ context.Context, id uint) (*model.MessBill, error) {
	if b, ok := m.bills[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBillRepo) List(_ context.Context, filter repository.BillFilter) ([]model.MessBill, error) {
	var result []model.MessBill
	for _, b := range m.bills {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.StudentID != 0 && b.StudentID != filter.StudentID {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBillRepo) ListAll(_ context.Context) ([]model.MessBill, error) {
	var result []model.MessBill
	for _, b := range m.bills {
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBillRepo) Update(_ context.Context, bill *model.MessBill) error {
	stored, ok := m.bills[bill.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	*stored = *bill
	return nil
}

func (m *mockBillRepo) Delete(_ context.Context, id uint) error {
	delete(m.bills, id)
	return nil
}
