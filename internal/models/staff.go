package models

type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffOnLeave  StaffStatus = "on-leave"
	StaffInactive StaffStatus = "inactive"
)

const (
	DeptAgroActivities = "Agro Activities"
	DeptWaterRides     = "Water Rides"
	DeptMaintenance    = "Maintenance"
	DeptAdministration = "Administration"
)

// Departments lists the staff departments in display order.
func Departments() []string {
	return []string{DeptAgroActivities, DeptWaterRides, DeptMaintenance, DeptAdministration}
}

type StaffMember struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Role       string      `json:"role"`
	Department string      `json:"department"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Shift      string      `json:"shift"`
	Status     StaffStatus `json:"status"`
	JoinDate   string      `json:"join_date"`
}

// SearchFields matches on both name and role.
func (s StaffMember) SearchFields() []string {
	return []string{s.Name, s.Role}
}

func (s StaffMember) Attr(name string) (string, bool) {
	switch name {
	case "department":
		return s.Department, true
	case "status":
		return string(s.Status), true
	case "shift":
		return s.Shift, true
	}
	return "", false
}
