package handler

// Export for testing
type DispenseResponse = dispenseResponse
type StatsResponse = statsResponse
type RecentRequest = recentRequest
type HealthResponse = healthResponse

var WriteServiceError = writeServiceError
var MaskAddress = maskAddress
