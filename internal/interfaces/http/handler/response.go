package handler

// DataResponse documents the success envelope for OpenAPI
// @Description Success response with typed data
type DataResponse[T any] struct {
	Message string `json:"message" example:"Customer retrieved successfully"`
	Data    T      `json:"data"`
}
