package predict

// Prediction is the expected demand for one onboard product.
type Prediction struct {
	Product         string `json:"product"`
	PredictedDemand int    `json:"predicted_demand"`
	Trend           string `json:"trend"` // up | down | steady
}

// Result is the response for one prediction request.
type Result struct {
	Predictions []Prediction `json:"predictions"`
	Report      string       `json:"report"`
}

// Params describe the flight whose onboard demand is being predicted.
type Params struct {
	OriginCountry       string `form:"origin_country" binding:"required"`
	FlightDuration      string `form:"flight_duration" binding:"required"` // HH:MM
	TimeOfDay           string `form:"time_of_day" binding:"required"`
	ConfirmedPassengers int    `form:"confirmed_passengers" binding:"required"`
}
