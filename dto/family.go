package dto

type MemberRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Mobile   *string `json:"mobile,omitempty"`
	BirthDay string  `json:"birthDay"`
}

type CreateFamilyRequest struct {
	Name           string          `json:"name"`
	SourceOfIncome string          `json:"sourceOfIncome"`
	MembersList    []MemberRequest `json:"membersList"`
}

type AssignRoomRequest struct {
	RoomID uint `json:"roomId"`
}
