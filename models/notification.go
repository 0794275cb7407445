package models

import "time"

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

type Toast struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Type      ToastType `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
