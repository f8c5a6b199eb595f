package requests

type CreateDoctor struct {
	FullName       string `json:"full_name" validate:"required,min=2"`
	Specialization string `json:"specialization" validate:"required"`
	Qualification  string `json:"qualification" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=Active Inactive"`
	ProfileImage   string `json:"profile_image" validate:"omitempty,url"`
}

type UpdateDoctor struct {
	FullName       string `json:"full_name" validate:"required,min=2"`
	Specialization string `json:"specialization" validate:"required"`
	Qualification  string `json:"qualification" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=Active Inactive"`
	ProfileImage   string `json:"profile_image" validate:"omitempty,url"`
}

// UploadProfileImage carries a data-URI encoded image destined for object
// storage; the stored object URL ends up in the doctor record.
type UploadProfileImage struct {
	Image string `json:"image" validate:"required"`
}
