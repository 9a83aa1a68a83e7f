package dto

import (
	"ferreo/internal/domain/catalogs/customer"
)

// --- Request DTOs ---

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name" binding:"required"`
	BusinessName string  `json:"businessName" binding:"required"`
	TaxID        *string `json:"taxId"`
	PriceTier    int     `json:"priceTier"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Comment      *string `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCustomerRequest) ToEntity() *customer.Customer {
	tier := r.PriceTier
	if tier == 0 {
		tier = customer.TierRetail
	}
	c := customer.NewCustomer(r.Code, r.Name, r.BusinessName, tier)
	c.TaxID = r.TaxID
	c.Address = r.Address
	c.Phone = r.Phone
	c.Email = r.Email
	c.Comment = r.Comment
	return c
}

// UpdateCustomerRequest is the request body for updating a customer.
type UpdateCustomerRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name" binding:"required"`
	BusinessName string  `json:"businessName" binding:"required"`
	TaxID        *string `json:"taxId"`
	PriceTier    int     `json:"priceTier" binding:"required"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Comment      *string `json:"comment"`
	Version      int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	c.Code = r.Code
	c.Name = r.Name
	c.BusinessName = r.BusinessName
	c.TaxID = r.TaxID
	c.PriceTier = r.PriceTier
	c.Address = r.Address
	c.Phone = r.Phone
	c.Email = r.Email
	c.Comment = r.Comment
	c.Version = r.Version
}

// --- Response DTOs ---

// CustomerResponse is the response body for a customer.
type CustomerResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	BusinessName string  `json:"businessName"`
	TaxID        *string `json:"taxId,omitempty"`
	PriceTier    int     `json:"priceTier"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	DeletionMark bool    `json:"deletionMark"`
	Version      int     `json:"version"`
}

// FromCustomer creates response DTO from domain entity.
func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           c.ID.String(),
		Code:         c.Code,
		Name:         c.Name,
		BusinessName: c.BusinessName,
		TaxID:        c.TaxID,
		PriceTier:    c.PriceTier,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		Comment:      c.Comment,
		DeletionMark: c.DeletionMark,
		Version:      c.Version,
	}
}
