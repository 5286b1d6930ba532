package models

type UserType string
type JobStatus string
type JobCategory string
type SalaryPeriod string
type ApplicationStatus string

const (
	UserTypeJobseeker UserType = "jobseeker"
	UserTypeEmployer  UserType = "employer"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	CategoryDomestic JobCategory = "Domestic"
	CategoryRetail   JobCategory = "Retail"
	CategoryFarm     JobCategory = "Farm"
	CategoryCatering JobCategory = "Catering"
	CategoryTrade    JobCategory = "Trade"

	SalaryPeriodWeekly  SalaryPeriod = "weekly"
	SalaryPeriodMonthly SalaryPeriod = "monthly"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// CategoryAll is the sentinel the job listing accepts to mean "no filter".
const CategoryAll = "All"

func (t UserType) Valid() bool {
	switch t {
	case UserTypeJobseeker, UserTypeEmployer:
		return true
	}
	return false
}

func (c JobCategory) Valid() bool {
	switch c {
	case CategoryDomestic, CategoryRetail, CategoryFarm, CategoryCatering, CategoryTrade:
		return true
	}
	return false
}

func (p SalaryPeriod) Valid() bool {
	switch p {
	case SalaryPeriodWeekly, SalaryPeriodMonthly:
		return true
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further status change is allowed.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransitionTo encodes the monotonic application workflow:
// pending may move to reviewed, accepted or rejected; reviewed may move to
// accepted or rejected; accepted and rejected are final.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !next.Valid() {
		return false
	}
	switch s {
	case ApplicationStatusPending:
		return next != ApplicationStatusPending
	case ApplicationStatusReviewed:
		return next == ApplicationStatusAccepted || next == ApplicationStatusRejected
	default:
		return false
	}
}
