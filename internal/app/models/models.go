package models

// StudentStatus is the lifecycle state of a student
type StudentStatus string

const (
	StatusActive    StudentStatus = "active"
	StatusAcademic  StudentStatus = "academic" // on academic leave
	StatusGraduated StudentStatus = "graduated"
	StatusExpelled  StudentStatus = "expelled"
)

// Valid reports whether s is a known status
func (s StudentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusAcademic, StatusGraduated, StatusExpelled:
		return true
	}
	return false
}

// ExpulsionReason explains why an expelled student left
type ExpulsionReason string

const (
	ReasonOwnDesire       ExpulsionReason = "own_desire"
	ReasonTransfer        ExpulsionReason = "transfer"
	ReasonAcademicFailure ExpulsionReason = "academic_failure"
	ReasonOther           ExpulsionReason = "other"
)

// Valid reports whether r is a known expulsion reason
func (r ExpulsionReason) Valid() bool {
	switch r {
	case ReasonOwnDesire, ReasonTransfer, ReasonAcademicFailure, ReasonOther:
		return true
	}
	return false
}

// EducationType is the funding source of a student's place
type EducationType string

const (
	EducationBudget   EducationType = "budget"
	EducationContract EducationType = "contract"
)

// Valid reports whether t is a known education type
func (t EducationType) Valid() bool {
	return t == EducationBudget || t == EducationContract
}

// AdmissionBasis is the competition a student was admitted under
type AdmissionBasis string

const (
	AdmissionGeneral AdmissionBasis = "general"
	AdmissionTarget  AdmissionBasis = "target"
	AdmissionQuota   AdmissionBasis = "quota"
)

// Valid reports whether b is a known admission basis
func (b AdmissionBasis) Valid() bool {
	switch b {
	case AdmissionGeneral, AdmissionTarget, AdmissionQuota:
		return true
	}
	return false
}

// EducationLevel of a program
type EducationLevel string

const (
	LevelUndergraduate EducationLevel = "undergraduate"
	LevelGraduate      EducationLevel = "graduate"
	LevelPostgraduate  EducationLevel = "postgraduate"
)
