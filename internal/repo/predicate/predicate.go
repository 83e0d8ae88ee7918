// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Address is the predicate function for address builders.
type Address func(*sql.Selector)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// DoctorLeave is the predicate function for doctorleave builders.
type DoctorLeave func(*sql.Selector)

// DoctorProfile is the predicate function for doctorprofile builders.
type DoctorProfile func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PatientProfile is the predicate function for patientprofile builders.
type PatientProfile func(*sql.Selector)

// ScheduleException is the predicate function for scheduleexception builders.
type ScheduleException func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WorkDay is the predicate function for workday builders.
type WorkDay func(*sql.Selector)
