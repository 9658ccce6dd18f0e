package models

import "time"

// Staff statuses.
const (
	StaffStatusActive   = "Active"
	StaffStatusInactive = "Inactive"
)

// Staff roles for authorization.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// JobTitles enumerates the accepted staff job titles.
var JobTitles = []string{
	"Manager", "Receptionist", "Housekeeper", "Chef", "Waiter",
	"Security Officer", "Maintenance Technician", "Accountant",
}

// Departments enumerates the accepted staff departments.
var Departments = []string{
	"Front Office", "Housekeeping", "Kitchen", "Restaurant",
	"Security", "Maintenance", "Finance", "Management",
}

// Shifts holds the three independent shift assignments for a staff member.
type Shifts struct {
	Morning   bool `bson:"morning" json:"morning"`
	Afternoon bool `bson:"afternoon" json:"afternoon"`
	Night     bool `bson:"night" json:"night"`
}

// Staff represents an employee record.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	NIC          string    `bson:"nic" json:"nic"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      string    `bson:"address" json:"address"`
	Gender       string    `bson:"gender" json:"gender"`
	JobTitle     string    `bson:"jobTitle" json:"jobTitle"`
	Department   string    `bson:"department" json:"department"`
	Shifts       Shifts    `bson:"shifts" json:"shifts"`
	Status       string    `bson:"status" json:"status"`
	ProfilePic   string    `bson:"profilePic" json:"profilePic"`
	BaseSalary   float64   `bson:"baseSalary" json:"baseSalary"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Attendance records a staff member's presence for a calendar day.
type Attendance struct {
	ID           string    `bson:"id" json:"id"`
	StaffID      string    `bson:"staffId" json:"staffId"`
	Date         string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Present      bool      `bson:"present" json:"present"`
	CheckInTime  string    `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckOutTime string    `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
	RecordedAt   time.Time `bson:"recordedAt" json:"recordedAt"`
}
