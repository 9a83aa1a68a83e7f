package dto

import (
	"ferreo/internal/domain/catalogs/supplier"
)

// --- Request DTOs ---

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name" binding:"required"`
	BusinessName string  `json:"businessName" binding:"required"`
	TaxID        *string `json:"taxId"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Comment      *string `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.NewSupplier(r.Code, r.Name, r.BusinessName)
	s.TaxID = r.TaxID
	s.Address = r.Address
	s.Phone = r.Phone
	s.Email = r.Email
	s.Comment = r.Comment
	return s
}

// UpdateSupplierRequest is the request body for updating a supplier.
type UpdateSupplierRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name" binding:"required"`
	BusinessName string  `json:"businessName" binding:"required"`
	TaxID        *string `json:"taxId"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Comment      *string `json:"comment"`
	Version      int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateSupplierRequest) ApplyTo(s *supplier.Supplier) {
	s.Code = r.Code
	s.Name = r.Name
	s.BusinessName = r.BusinessName
	s.TaxID = r.TaxID
	s.Address = r.Address
	s.Phone = r.Phone
	s.Email = r.Email
	s.Comment = r.Comment
	s.Version = r.Version
}

// SetAccessCodeRequest sets or clears the supplier portal access code.
type SetAccessCodeRequest struct {
	AccessCode string `json:"accessCode"`
}

// --- Response DTOs ---

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	BusinessName  string  `json:"businessName"`
	TaxID         *string `json:"taxId,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Comment       *string `json:"comment,omitempty"`
	PortalEnabled bool    `json:"portalEnabled"`
	DeletionMark  bool    `json:"deletionMark"`
	Version       int     `json:"version"`
}

// FromSupplier creates response DTO from domain entity.
func FromSupplier(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:            s.ID.String(),
		Code:          s.Code,
		Name:          s.Name,
		BusinessName:  s.BusinessName,
		TaxID:         s.TaxID,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		Comment:       s.Comment,
		PortalEnabled: s.PortalEnabled(),
		DeletionMark:  s.DeletionMark,
		Version:       s.Version,
	}
}
