package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// User type tags returned by the login endpoint
const (
	UserTypeAdmin    = "admin"
	UserTypeSupplier = "supplier"
)

// Role tags used by the authorization middleware
const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleSupplier = "ROLE_SUPPLIER"
)

// SupplierStatus represents supplier account status
type SupplierStatus string

const (
	SupplierActive      SupplierStatus = "ACTIVE"
	SupplierInactive    SupplierStatus = "INACTIVE"
	SupplierBlacklisted SupplierStatus = "BLACKLISTED"
)

// IsValid checks if the status is a known value
func (s SupplierStatus) IsValid() bool {
	switch s {
	case SupplierActive, SupplierInactive, SupplierBlacklisted:
		return true
	}
	return false
}

// ProjectStatus represents project lifecycle status
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// IsValid checks if the status is a known value
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// TaskStatus represents task lifecycle status
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskDelayed    TaskStatus = "DELAYED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// IsValid checks if the status is a known value
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskDelayed, TaskCancelled:
		return true
	}
	return false
}

// RoleList is a set of role tags stored as a JSON column.
// Request bodies may encode it as a single string or a list of strings
// (Swagger UI sends both shapes), so unmarshalling accepts either.
type RoleList []string

// UnmarshalJSON accepts "ROLE_X", ["ROLE_X", ...] or null
func (r *RoleList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*r = nil
			return nil
		}
		*r = RoleList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*r = RoleList(list).Normalize()
	return nil
}

// Normalize removes empty entries and duplicates, preserving first-seen order
func (r RoleList) Normalize() RoleList {
	seen := make(map[string]struct{}, len(r))
	out := make(RoleList, 0, len(r))
	for _, role := range r {
		if role == "" {
			continue
		}
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Contains reports whether the set holds the given role
func (r RoleList) Contains(role string) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// ============================================================
// Principal tables
// ============================================================

// Admin represents admins table
type Admin struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	FullName    string         `gorm:"size:100;not null" json:"full_name"`
	Email       string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password    string         `gorm:"size:100;not null" json:"-"`
	PhoneNumber string         `gorm:"size:15" json:"phone_number,omitempty"`
	Roles       RoleList       `gorm:"serializer:json;type:varchar(255)" json:"roles"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}

// Supplier represents suppliers table
type Supplier struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	SupplierName  string         `gorm:"size:100;not null" json:"supplier_name"`
	Address       string         `gorm:"size:200" json:"address"`
	Email         string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password      string         `gorm:"size:100;not null" json:"-"`
	PhoneNumber   string         `gorm:"size:15" json:"phone_number,omitempty"`
	ContactPerson string         `gorm:"size:100" json:"contact_person,omitempty"`
	Category      string         `gorm:"size:50" json:"category,omitempty"`
	Description   string         `gorm:"size:1000" json:"description,omitempty"`
	Status        SupplierStatus `gorm:"size:20;default:'ACTIVE'" json:"status"`
	Roles         RoleList       `gorm:"serializer:json;type:varchar(255)" json:"roles"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// AccountEmail spans both principal tables with a single unique index.
// Inserted in the same transaction as the admin/supplier row, it makes the
// cross-table email uniqueness check atomic; the per-request existence
// checks are only for friendly error messages.
type AccountEmail struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	UserType  string    `gorm:"size:20;not null" json:"user_type"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AccountEmail) TableName() string {
	return "account_emails"
}

// ============================================================
// Project / Task tables
// ============================================================

// Project represents projects table
type Project struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:100;not null" json:"name"`
	Description string        `gorm:"size:1000" json:"description,omitempty"`
	StartDate   *time.Time    `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time    `gorm:"type:date" json:"end_date,omitempty"`
	Status      ProjectStatus `gorm:"size:20;default:'PLANNING'" json:"status"`
	AdminID     *uint         `gorm:"index" json:"admin_id,omitempty"`
	CreatedBy   *Admin        `gorm:"foreignKey:AdminID" json:"created_by,omitempty"`
	Tasks       []Task        `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// Task represents tasks table
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"size:1000" json:"description,omitempty"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	Status      TaskStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	Budget      float64    `gorm:"type:decimal(10,2)" json:"budget"`
	ProjectID   uint       `gorm:"index;not null" json:"project_id"`
	Project     *Project   `gorm:"foreignKey:ProjectID" json:"-"`
	SupplierID  *uint      `gorm:"index" json:"supplier_id,omitempty"`
	AssignedTo  *Supplier  `gorm:"foreignKey:SupplierID" json:"assigned_to,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// AutoMigrate creates/updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Supplier{},
		&AccountEmail{},
		&Project{},
		&Task{},
	)
}
