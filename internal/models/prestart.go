package models

// Status values for a compliance check.
const (
	StatusCompliant    = "Compliant"
	StatusNonCompliant = "Non-compliant"
	StatusNA           = "N/A"
)

// Tyre condition values.
const (
	TyreConditionOK             = "OK"
	TyreConditionDamage         = "Damage"
	TyreConditionNeedsAttention = "Needs Attention"
)

// Tyre pressure check values.
const (
	PressureCheckPass = "Pass"
	PressureCheckFail = "Fail"
)

// GeneralInfo is the header section of a pre-start checklist.
type GeneralInfo struct {
	PlantNumber     string   `json:"plantNumber" validate:"required"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	CompletedBy     string   `json:"completedBy" validate:"required"`
	RegistrationDue string   `json:"registrationDue,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CofWofDue       string   `json:"cofWofDue,omitempty" validate:"omitempty,datetime=2006-01-02"`
	HubKmReading    *float64 `json:"hubKmReading,omitempty" validate:"omitempty,gte=0"`
	SpeedoReading   *float64 `json:"speedoReading,omitempty" validate:"omitempty,gte=0"`
}

// Check is one cell of the area x item compliance matrix. Clients omit
// untouched cells entirely, so a submission normally carries a sparse
// subset of the full matrix.
type Check struct {
	Area     string `json:"area" validate:"required,check_area"`
	Item     string `json:"item" validate:"required,check_item"`
	Status   string `json:"status" validate:"required,oneof=Compliant Non-compliant N/A"`
	Note     string `json:"note,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// Tyre holds per-position measurements. Position is free-form on purpose:
// trailers and odd configurations use positions outside the catalog set.
type Tyre struct {
	Position      string   `json:"position" validate:"required"`
	TreadDepthMm  *float64 `json:"treadDepthMm,omitempty" validate:"omitempty,gte=0"`
	Condition     string   `json:"condition,omitempty" validate:"omitempty,oneof=OK Damage 'Needs Attention'"`
	PressureCheck string   `json:"pressureCheck,omitempty" validate:"omitempty,oneof=Pass Fail"`
}

// Defect is a free-text fault report attached to the submission.
type Defect struct {
	NatureOfFault     string `json:"natureOfFault" validate:"required"`
	WorkCarriedOutBy  string `json:"workCarriedOutBy,omitempty"`
	DateWorkCompleted string `json:"dateWorkCompleted,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Comments          string `json:"comments,omitempty"`
}

// Prestart is the submission root. Immutable once validated; corrections
// are new submissions.
type Prestart struct {
	GeneralInfo GeneralInfo `json:"generalInfo" validate:"required"`
	Checks      []Check     `json:"checks" validate:"min=1,dive"`
	Tyres       []Tyre      `json:"tyres" validate:"dive"`
	Defects     []Defect    `json:"defects" validate:"dive"`
}
