package models

// RankedLandmark is one entry of the most visited landmarks ranking.
type RankedLandmark struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

// RankedUser is one entry of the most active users ranking.
type RankedUser struct {
	Username string `json:"username"`
	Visits   int    `json:"visits"`
}

// Analytics is the summary served by /api/analytics.
// Image statistics are present only when landmarks exist and rankings only
// when visits exist.
type Analytics struct {
	TotalLandmarks       int              `json:"total_landmarks"`
	TotalUsers           int              `json:"total_users"`
	TotalVisits          int              `json:"total_visits"`
	TotalImages          *int             `json:"total_images,omitempty"`
	AvgImagesPerLandmark *float64         `json:"avg_images_per_landmark,omitempty"`
	TopLandmarks         []RankedLandmark `json:"top_landmarks,omitempty"`
	TopUsers             []RankedUser     `json:"top_users,omitempty"`
}
