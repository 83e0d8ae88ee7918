// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AddressesColumns holds the columns for the "addresses" table.
	AddressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "city", Type: field.TypeString, Size: 100},
		{Name: "street", Type: field.TypeString, Size: 255},
		{Name: "postal_code", Type: field.TypeString, Nullable: true, Size: 20},
	}
	// AddressesTable holds the schema information for the "addresses" table.
	AddressesTable = &schema.Table{
		Name:       "addresses",
		Columns:    AddressesColumns,
		PrimaryKey: []*schema.Column{AddressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "address_user_id",
				Unique:  false,
				Columns: []*schema.Column{AddressesColumns[3]},
			},
		},
	}
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 50, Default: "GENERAL"},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"SCHEDULED", "PENDING", "CONFIRMED", "CANCELLED"}, Default: "PENDING"},
		{Name: "start_at", Type: field.TypeTime},
		{Name: "end_at", Type: field.TypeTime},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_start_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_patient_id_start_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_state",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6]},
			},
		},
	}
	// DoctorLeavesColumns holds the columns for the "doctor_leaves" table.
	DoctorLeavesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "reason", Type: field.TypeString, Size: 255},
	}
	// DoctorLeavesTable holds the schema information for the "doctor_leaves" table.
	DoctorLeavesTable = &schema.Table{
		Name:       "doctor_leaves",
		Columns:    DoctorLeavesColumns,
		PrimaryKey: []*schema.Column{DoctorLeavesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctorleave_doctor_id_start_date",
				Unique:  false,
				Columns: []*schema.Column{DoctorLeavesColumns[3], DoctorLeavesColumns[4]},
			},
		},
	}
	// DoctorProfilesColumns holds the columns for the "doctor_profiles" table.
	DoctorProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 150},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// DoctorProfilesTable holds the schema information for the "doctor_profiles" table.
	DoctorProfilesTable = &schema.Table{
		Name:       "doctor_profiles",
		Columns:    DoctorProfilesColumns,
		PrimaryKey: []*schema.Column{DoctorProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctorprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{DoctorProfilesColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "recipient_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_sender_id_recipient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[5], MessagesColumns[1]},
			},
			{
				Name:    "message_recipient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5], MessagesColumns[1]},
			},
		},
	}
	// PatientProfilesColumns holds the columns for the "patient_profiles" table.
	PatientProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"MALE", "FEMALE", "OTHER"}},
	}
	// PatientProfilesTable holds the schema information for the "patient_profiles" table.
	PatientProfilesTable = &schema.Table{
		Name:       "patient_profiles",
		Columns:    PatientProfilesColumns,
		PrimaryKey: []*schema.Column{PatientProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patientprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientProfilesColumns[3]},
			},
		},
	}
	// ScheduleExceptionsColumns holds the columns for the "schedule_exceptions" table.
	ScheduleExceptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"CANCELLED", "ADDED", "CHANGED"}},
		{Name: "start", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "end", Type: field.TypeString, Nullable: true, Size: 5},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// ScheduleExceptionsTable holds the schema information for the "schedule_exceptions" table.
	ScheduleExceptionsTable = &schema.Table{
		Name:       "schedule_exceptions",
		Columns:    ScheduleExceptionsColumns,
		PrimaryKey: []*schema.Column{ScheduleExceptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduleexception_doctor_id_date",
				Unique:  true,
				Columns: []*schema.Column{ScheduleExceptionsColumns[3], ScheduleExceptionsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 150},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "DOCTOR", "PATIENT"}},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// WorkDaysColumns holds the columns for the "work_days" table.
	WorkDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "day", Type: field.TypeInt8},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
	}
	// WorkDaysTable holds the schema information for the "work_days" table.
	WorkDaysTable = &schema.Table{
		Name:       "work_days",
		Columns:    WorkDaysColumns,
		PrimaryKey: []*schema.Column{WorkDaysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workday_doctor_id_day",
				Unique:  true,
				Columns: []*schema.Column{WorkDaysColumns[3], WorkDaysColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AddressesTable,
		AppointmentsTable,
		DoctorLeavesTable,
		DoctorProfilesTable,
		MessagesTable,
		PatientProfilesTable,
		ScheduleExceptionsTable,
		UsersTable,
		WorkDaysTable,
	}
)

func init() {
}
