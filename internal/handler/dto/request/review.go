package request

type SubmitReviewRequest struct {
	AgencyID int64  `json:"agency_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty" binding:"max=1000"`
}
