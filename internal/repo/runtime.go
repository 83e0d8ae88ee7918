// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/dermee/dermee_backend/internal/repo/address"
	"github.com/dermee/dermee_backend/internal/repo/appointment"
	"github.com/dermee/dermee_backend/internal/repo/doctorleave"
	"github.com/dermee/dermee_backend/internal/repo/doctorprofile"
	"github.com/dermee/dermee_backend/internal/repo/message"
	"github.com/dermee/dermee_backend/internal/repo/patientprofile"
	"github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	"github.com/dermee/dermee_backend/internal/repo/user"
	"github.com/dermee/dermee_backend/internal/repo/workday"
	"github.com/dermee/dermee_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	addressMixin := schema.Address{}.Mixin()
	addressMixinFields0 := addressMixin[0].Fields()
	_ = addressMixinFields0
	addressMixinFields1 := addressMixin[1].Fields()
	_ = addressMixinFields1
	addressFields := schema.Address{}.Fields()
	_ = addressFields
	// addressDescCreatedAt is the schema descriptor for created_at field.
	addressDescCreatedAt := addressMixinFields1[0].Descriptor()
	// address.DefaultCreatedAt holds the default value on creation for the created_at field.
	address.DefaultCreatedAt = addressDescCreatedAt.Default.(func() time.Time)
	// addressDescUpdatedAt is the schema descriptor for updated_at field.
	addressDescUpdatedAt := addressMixinFields1[1].Descriptor()
	// address.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	address.DefaultUpdatedAt = addressDescUpdatedAt.Default.(func() time.Time)
	// address.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	address.UpdateDefaultUpdatedAt = addressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// addressDescCity is the schema descriptor for city field.
	addressDescCity := addressFields[1].Descriptor()
	// address.CityValidator is a validator for the "city" field. It is called by the builders before save.
	address.CityValidator = addressDescCity.Validators[0].(func(string) error)
	// addressDescStreet is the schema descriptor for street field.
	addressDescStreet := addressFields[2].Descriptor()
	// address.StreetValidator is a validator for the "street" field. It is called by the builders before save.
	address.StreetValidator = addressDescStreet.Validators[0].(func(string) error)
	// addressDescPostalCode is the schema descriptor for postal_code field.
	addressDescPostalCode := addressFields[3].Descriptor()
	// address.PostalCodeValidator is a validator for the "postal_code" field. It is called by the builders before save.
	address.PostalCodeValidator = addressDescPostalCode.Validators[0].(func(string) error)
	// addressDescID is the schema descriptor for id field.
	addressDescID := addressMixinFields0[0].Descriptor()
	// address.DefaultID holds the default value on creation for the id field.
	address.DefaultID = addressDescID.Default.(func() uuid.UUID)
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescType is the schema descriptor for type field.
	appointmentDescType := appointmentFields[2].Descriptor()
	// appointment.DefaultType holds the default value on creation for the type field.
	appointment.DefaultType = appointmentDescType.Default.(string)
	// appointment.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	appointment.TypeValidator = appointmentDescType.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	doctorleaveMixin := schema.DoctorLeave{}.Mixin()
	doctorleaveMixinFields0 := doctorleaveMixin[0].Fields()
	_ = doctorleaveMixinFields0
	doctorleaveMixinFields1 := doctorleaveMixin[1].Fields()
	_ = doctorleaveMixinFields1
	doctorleaveFields := schema.DoctorLeave{}.Fields()
	_ = doctorleaveFields
	// doctorleaveDescCreatedAt is the schema descriptor for created_at field.
	doctorleaveDescCreatedAt := doctorleaveMixinFields1[0].Descriptor()
	// doctorleave.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorleave.DefaultCreatedAt = doctorleaveDescCreatedAt.Default.(func() time.Time)
	// doctorleaveDescUpdatedAt is the schema descriptor for updated_at field.
	doctorleaveDescUpdatedAt := doctorleaveMixinFields1[1].Descriptor()
	// doctorleave.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorleave.DefaultUpdatedAt = doctorleaveDescUpdatedAt.Default.(func() time.Time)
	// doctorleave.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorleave.UpdateDefaultUpdatedAt = doctorleaveDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorleaveDescReason is the schema descriptor for reason field.
	doctorleaveDescReason := doctorleaveFields[3].Descriptor()
	// doctorleave.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	doctorleave.ReasonValidator = doctorleaveDescReason.Validators[0].(func(string) error)
	// doctorleaveDescID is the schema descriptor for id field.
	doctorleaveDescID := doctorleaveMixinFields0[0].Descriptor()
	// doctorleave.DefaultID holds the default value on creation for the id field.
	doctorleave.DefaultID = doctorleaveDescID.Default.(func() uuid.UUID)
	doctorprofileMixin := schema.DoctorProfile{}.Mixin()
	doctorprofileMixinFields0 := doctorprofileMixin[0].Fields()
	_ = doctorprofileMixinFields0
	doctorprofileMixinFields1 := doctorprofileMixin[1].Fields()
	_ = doctorprofileMixinFields1
	doctorprofileFields := schema.DoctorProfile{}.Fields()
	_ = doctorprofileFields
	// doctorprofileDescCreatedAt is the schema descriptor for created_at field.
	doctorprofileDescCreatedAt := doctorprofileMixinFields1[0].Descriptor()
	// doctorprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorprofile.DefaultCreatedAt = doctorprofileDescCreatedAt.Default.(func() time.Time)
	// doctorprofileDescUpdatedAt is the schema descriptor for updated_at field.
	doctorprofileDescUpdatedAt := doctorprofileMixinFields1[1].Descriptor()
	// doctorprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorprofile.DefaultUpdatedAt = doctorprofileDescUpdatedAt.Default.(func() time.Time)
	// doctorprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorprofile.UpdateDefaultUpdatedAt = doctorprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorprofileDescSpecialty is the schema descriptor for specialty field.
	doctorprofileDescSpecialty := doctorprofileFields[1].Descriptor()
	// doctorprofile.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctorprofile.SpecialtyValidator = doctorprofileDescSpecialty.Validators[0].(func(string) error)
	// doctorprofileDescID is the schema descriptor for id field.
	doctorprofileDescID := doctorprofileMixinFields0[0].Descriptor()
	// doctorprofile.DefaultID holds the default value on creation for the id field.
	doctorprofile.DefaultID = doctorprofileDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescUpdatedAt is the schema descriptor for updated_at field.
	messageDescUpdatedAt := messageMixinFields1[1].Descriptor()
	// message.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	message.DefaultUpdatedAt = messageDescUpdatedAt.Default.(func() time.Time)
	// message.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	message.UpdateDefaultUpdatedAt = messageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[2].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = messageDescContent.Validators[0].(func(string) error)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	patientprofileMixin := schema.PatientProfile{}.Mixin()
	patientprofileMixinFields0 := patientprofileMixin[0].Fields()
	_ = patientprofileMixinFields0
	patientprofileMixinFields1 := patientprofileMixin[1].Fields()
	_ = patientprofileMixinFields1
	patientprofileFields := schema.PatientProfile{}.Fields()
	_ = patientprofileFields
	// patientprofileDescCreatedAt is the schema descriptor for created_at field.
	patientprofileDescCreatedAt := patientprofileMixinFields1[0].Descriptor()
	// patientprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientprofile.DefaultCreatedAt = patientprofileDescCreatedAt.Default.(func() time.Time)
	// patientprofileDescUpdatedAt is the schema descriptor for updated_at field.
	patientprofileDescUpdatedAt := patientprofileMixinFields1[1].Descriptor()
	// patientprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientprofile.DefaultUpdatedAt = patientprofileDescUpdatedAt.Default.(func() time.Time)
	// patientprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientprofile.UpdateDefaultUpdatedAt = patientprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientprofileDescID is the schema descriptor for id field.
	patientprofileDescID := patientprofileMixinFields0[0].Descriptor()
	// patientprofile.DefaultID holds the default value on creation for the id field.
	patientprofile.DefaultID = patientprofileDescID.Default.(func() uuid.UUID)
	scheduleexceptionMixin := schema.ScheduleException{}.Mixin()
	scheduleexceptionMixinFields0 := scheduleexceptionMixin[0].Fields()
	_ = scheduleexceptionMixinFields0
	scheduleexceptionMixinFields1 := scheduleexceptionMixin[1].Fields()
	_ = scheduleexceptionMixinFields1
	scheduleexceptionFields := schema.ScheduleException{}.Fields()
	_ = scheduleexceptionFields
	// scheduleexceptionDescCreatedAt is the schema descriptor for created_at field.
	scheduleexceptionDescCreatedAt := scheduleexceptionMixinFields1[0].Descriptor()
	// scheduleexception.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduleexception.DefaultCreatedAt = scheduleexceptionDescCreatedAt.Default.(func() time.Time)
	// scheduleexceptionDescUpdatedAt is the schema descriptor for updated_at field.
	scheduleexceptionDescUpdatedAt := scheduleexceptionMixinFields1[1].Descriptor()
	// scheduleexception.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduleexception.DefaultUpdatedAt = scheduleexceptionDescUpdatedAt.Default.(func() time.Time)
	// scheduleexception.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduleexception.UpdateDefaultUpdatedAt = scheduleexceptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scheduleexceptionDescStart is the schema descriptor for start field.
	scheduleexceptionDescStart := scheduleexceptionFields[3].Descriptor()
	// scheduleexception.StartValidator is a validator for the "start" field. It is called by the builders before save.
	scheduleexception.StartValidator = scheduleexceptionDescStart.Validators[0].(func(string) error)
	// scheduleexceptionDescEnd is the schema descriptor for end field.
	scheduleexceptionDescEnd := scheduleexceptionFields[4].Descriptor()
	// scheduleexception.EndValidator is a validator for the "end" field. It is called by the builders before save.
	scheduleexception.EndValidator = scheduleexceptionDescEnd.Validators[0].(func(string) error)
	// scheduleexceptionDescReason is the schema descriptor for reason field.
	scheduleexceptionDescReason := scheduleexceptionFields[5].Descriptor()
	// scheduleexception.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	scheduleexception.ReasonValidator = scheduleexceptionDescReason.Validators[0].(func(string) error)
	// scheduleexceptionDescID is the schema descriptor for id field.
	scheduleexceptionDescID := scheduleexceptionMixinFields0[0].Descriptor()
	// scheduleexception.DefaultID holds the default value on creation for the id field.
	scheduleexception.DefaultID = scheduleexceptionDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[4].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	workdayMixin := schema.WorkDay{}.Mixin()
	workdayMixinFields0 := workdayMixin[0].Fields()
	_ = workdayMixinFields0
	workdayMixinFields1 := workdayMixin[1].Fields()
	_ = workdayMixinFields1
	workdayFields := schema.WorkDay{}.Fields()
	_ = workdayFields
	// workdayDescCreatedAt is the schema descriptor for created_at field.
	workdayDescCreatedAt := workdayMixinFields1[0].Descriptor()
	// workday.DefaultCreatedAt holds the default value on creation for the created_at field.
	workday.DefaultCreatedAt = workdayDescCreatedAt.Default.(func() time.Time)
	// workdayDescUpdatedAt is the schema descriptor for updated_at field.
	workdayDescUpdatedAt := workdayMixinFields1[1].Descriptor()
	// workday.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workday.DefaultUpdatedAt = workdayDescUpdatedAt.Default.(func() time.Time)
	// workday.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workday.UpdateDefaultUpdatedAt = workdayDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workdayDescDay is the schema descriptor for day field.
	workdayDescDay := workdayFields[1].Descriptor()
	// workday.DayValidator is a validator for the "day" field. It is called by the builders before save.
	workday.DayValidator = func() func(int8) error {
		validators := workdayDescDay.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(day int8) error {
			for _, fn := range fns {
				if err := fn(day); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workdayDescStartTime is the schema descriptor for start_time field.
	workdayDescStartTime := workdayFields[2].Descriptor()
	// workday.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	workday.StartTimeValidator = workdayDescStartTime.Validators[0].(func(string) error)
	// workdayDescEndTime is the schema descriptor for end_time field.
	workdayDescEndTime := workdayFields[3].Descriptor()
	// workday.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	workday.EndTimeValidator = workdayDescEndTime.Validators[0].(func(string) error)
	// workdayDescID is the schema descriptor for id field.
	workdayDescID := workdayMixinFields0[0].Descriptor()
	// workday.DefaultID holds the default value on creation for the id field.
	workday.DefaultID = workdayDescID.Default.(func() uuid.UUID)
}
