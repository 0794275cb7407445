package services

import (
	"sync"
	"time"
)

// PaymentMetrics menyimpan metrik terkait pembayaran
type PaymentMetrics struct {
	TotalTransactions  int64 `json:"total_transactions"`
	SuccessfulPayments int64 `json:"successful_payments"`
	FailedPayments     int64 `json:"failed_payments"`
	AvgResponseTime    int64 `json:"avg_response_time_ms"` // dalam milisecond
}

// PaymentMonitor counts simulated authorizations and how long they took.
type PaymentMonitor struct {
	mutex     sync.Mutex
	metrics   PaymentMetrics
	totalTime time.Duration
}

func NewPaymentMonitor() *PaymentMonitor {
	return &PaymentMonitor{}
}

// Record adds one finished authorization.
func (pm *PaymentMonitor) Record(success bool, took time.Duration) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	pm.metrics.TotalTransactions++
	if success {
		pm.metrics.SuccessfulPayments++
	} else {
		pm.metrics.FailedPayments++
	}
	pm.totalTime += took
	pm.metrics.AvgResponseTime = (pm.totalTime / time.Duration(pm.metrics.TotalTransactions)).Milliseconds()
}

// GetMetrics mengembalikan metrik pembayaran saat ini
func (pm *PaymentMonitor) GetMetrics() PaymentMetrics {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	return pm.metrics
}
