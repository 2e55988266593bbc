package http

import "time"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries the credentials submitted for verification.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse identifies the authenticated user. BranchID is empty for
// admins.
type LoginResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	BranchID string `json:"branchId,omitempty"`
}

// OrderRequest is the submission body for creating and updating orders.
// Status is required on update and optional on create, where an absent status
// means Pending; BranchID is required on update and, for admins, on create.
type OrderRequest struct {
	ClientName      string    `json:"clientName"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	PickupAt        time.Time `json:"pickupAt"`
	DeliveryAt      time.Time `json:"deliveryAt"`
	CargoType       string    `json:"cargoType"`
	CargoWeight     float64   `json:"cargoWeight"`
	VehicleType     string    `json:"vehicleType"`
	Status          string    `json:"status,omitempty"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
	VehicleID       *string   `json:"vehicleId,omitempty"`
	DriverID        *string   `json:"driverId,omitempty"`
	BranchID        *string   `json:"branchId,omitempty"`
}

// CreatedResponse returns the identifier assigned to a newly created record.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is one row of the order list.
type OrderResponse struct {
	ID              string    `json:"id"`
	ClientName      string    `json:"clientName"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	PickupAt        time.Time `json:"pickupAt"`
	DeliveryAt      time.Time `json:"deliveryAt"`
	CargoType       string    `json:"cargoType"`
	CargoWeight     float64   `json:"cargoWeight"`
	VehicleType     string    `json:"vehicleType"`
	Status          string    `json:"status"`
	DistanceKm      *float64  `json:"distanceKm,omitempty"`
	VehicleID       string    `json:"vehicleId,omitempty"`
	VehicleName     string    `json:"vehicleName"`
	DriverID        string    `json:"driverId,omitempty"`
	DriverName      string    `json:"driverName"`
	BranchID        string    `json:"branchId,omitempty"`
	BranchName      string    `json:"branchName"`
	Revenue         string    `json:"revenue"`
}

// DashboardResponse carries the operational metrics for the actor's scope.
type DashboardResponse struct {
	ActiveCount     int    `json:"activeCount"`
	TodayDeliveries int    `json:"todayDeliveries"`
	MonthlyRevenue  string `json:"monthlyRevenue"`
}

// VehicleRequest is the submission body for registering a vehicle.
type VehicleRequest struct {
	Registration string  `json:"registration"`
	VehicleType  string  `json:"vehicleType"`
	CapacityKg   float64 `json:"capacityKg"`
}

// VehicleResponse is one row of the vehicle list.
type VehicleResponse struct {
	ID           string  `json:"id"`
	Registration string  `json:"registration"`
	VehicleType  string  `json:"vehicleType"`
	CapacityKg   float64 `json:"capacityKg"`
	Status       string  `json:"status"`
}

// DriverRequest is the submission body for registering a driver.
type DriverRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

// DriverResponse is one row of the driver list.
type DriverResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Status      string `json:"status"`
}

// BranchRequest is the submission body for creating a branch.
type BranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// BranchResponse is one row of the branch list.
type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UserRequest is the submission body for registering a user. The password is
// hashed before storage and never returned.
type UserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	BranchID *string `json:"branchId,omitempty"`
}

// UserResponse is one row of the user list.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	BranchID string `json:"branchId,omitempty"`
}

// ReportRequest selects a report kind and carries its parameters. Financial
// and efficiency reports take the optional date bounds; custom reports take
// the order, distance and destination.
type ReportRequest struct {
	Type        string `json:"type"`
	BranchID    string `json:"branchId,omitempty"`
	DateFrom    string `json:"dateFrom,omitempty"`
	DateTo      string `json:"dateTo,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
	Distance    string `json:"distance,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// ReportResponse carries the rendered report text.
type ReportResponse struct {
	Report string `json:"report"`
}
