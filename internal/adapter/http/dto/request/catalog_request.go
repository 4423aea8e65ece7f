package request

type CreateServiceRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Price    int64  `json:"price" binding:"required"`
}

type UpdateServicePriceRequest struct {
	Price int64 `json:"price" binding:"required"`
}
