package dto

// AddPermissionRequest is the payload for POST /api/add_permission.
type AddPermissionRequest struct {
	Date   string `json:"date" validate:"required"`
	Reason string `json:"reason" validate:"required"`
	Proof  string `json:"proof"`
}

// UpdatePermissionStatusRequest is the payload for
// POST /api/update_permission_status. Status is deliberately not
// constrained to pending/approved/rejected; the stored value is
// whatever the faculty client sent.
type UpdatePermissionStatusRequest struct {
	PermissionID int64  `json:"permission_id" validate:"required"`
	Status       string `json:"status" validate:"required"`
}
