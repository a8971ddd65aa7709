// Package services holds the resource services behind the HTTP controllers.
//
//   - CohortService: CRUD over cohorts
//   - StudentService: CRUD over students, reads resolve the cohort reference
//   - UserService: protected user lookup
//   - CohortResolver: inlines a student's cohort on read
package services
