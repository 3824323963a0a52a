package dto

// Request DTOs

type CreateHospitalRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Address     string   `json:"address" validate:"max=300"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Departments []string `json:"departments" validate:"dive,max=120"`
}

type UpdateCongestionRequest struct {
	CongestionLevel *float64 `json:"congestion_level" validate:"required,gte=0,lte=100"`
}

// Response DTOs

type HospitalResponse struct {
	HospitalCode    string   `json:"hospital_code"`
	Name            string   `json:"name"`
	Address         string   `json:"address,omitempty"`
	Capacity        int      `json:"capacity"`
	CongestionLevel float64  `json:"congestion_level"`
	Departments     []string `json:"departments"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}
