package responses

type Doctor struct {
	ID             int64  `json:"id"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Status         string `json:"status"`
	ProfileImage   string `json:"profile_image,omitempty"`
}
