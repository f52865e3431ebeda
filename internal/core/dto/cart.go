package dto

type ProductRequest struct {
	Product string `json:"product" binding:"required"`
}
