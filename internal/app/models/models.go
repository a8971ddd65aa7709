package models

// Program is the bootcamp track a cohort (or student) belongs to
type Program string

const (
	ProgramWebDev        Program = "Web Dev"
	ProgramUXUI          Program = "UX/UI"
	ProgramDataAnalytics Program = "Data Analytics"
	ProgramCybersecurity Program = "Cybersecurity"
)

// Format is the cohort schedule
type Format string

const (
	FormatFullTime Format = "Full Time"
	FormatPartTime Format = "Part Time"
)
