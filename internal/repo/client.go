// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dermee/dermee_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/dermee/dermee_backend/internal/repo/address"
	"github.com/dermee/dermee_backend/internal/repo/appointment"
	"github.com/dermee/dermee_backend/internal/repo/doctorleave"
	"github.com/dermee/dermee_backend/internal/repo/doctorprofile"
	"github.com/dermee/dermee_backend/internal/repo/message"
	"github.com/dermee/dermee_backend/internal/repo/patientprofile"
	"github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	"github.com/dermee/dermee_backend/internal/repo/user"
	"github.com/dermee/dermee_backend/internal/repo/workday"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Address is the client for interacting with the Address builders.
	Address *AddressClient
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// DoctorLeave is the client for interacting with the DoctorLeave builders.
	DoctorLeave *DoctorLeaveClient
	// DoctorProfile is the client for interacting with the DoctorProfile builders.
	DoctorProfile *DoctorProfileClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// PatientProfile is the client for interacting with the PatientProfile builders.
	PatientProfile *PatientProfileClient
	// ScheduleException is the client for interacting with the ScheduleException builders.
	ScheduleException *ScheduleExceptionClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WorkDay is the client for interacting with the WorkDay builders.
	WorkDay *WorkDayClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Address = NewAddressClient(c.config)
	c.Appointment = NewAppointmentClient(c.config)
	c.DoctorLeave = NewDoctorLeaveClient(c.config)
	c.DoctorProfile = NewDoctorProfileClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.PatientProfile = NewPatientProfileClient(c.config)
	c.ScheduleException = NewScheduleExceptionClient(c.config)
	c.User = NewUserClient(c.config)
	c.WorkDay = NewWorkDayClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Address:           NewAddressClient(cfg),
		Appointment:       NewAppointmentClient(cfg),
		DoctorLeave:       NewDoctorLeaveClient(cfg),
		DoctorProfile:     NewDoctorProfileClient(cfg),
		Message:           NewMessageClient(cfg),
		PatientProfile:    NewPatientProfileClient(cfg),
		ScheduleException: NewScheduleExceptionClient(cfg),
		User:              NewUserClient(cfg),
		WorkDay:           NewWorkDayClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Address:           NewAddressClient(cfg),
		Appointment:       NewAppointmentClient(cfg),
		DoctorLeave:       NewDoctorLeaveClient(cfg),
		DoctorProfile:     NewDoctorProfileClient(cfg),
		Message:           NewMessageClient(cfg),
		PatientProfile:    NewPatientProfileClient(cfg),
		ScheduleException: NewScheduleExceptionClient(cfg),
		User:              NewUserClient(cfg),
		WorkDay:           NewWorkDayClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Address.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Address, c.Appointment, c.DoctorLeave, c.DoctorProfile, c.Message,
		c.PatientProfile, c.ScheduleException, c.User, c.WorkDay,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Address, c.Appointment, c.DoctorLeave, c.DoctorProfile, c.Message,
		c.PatientProfile, c.ScheduleException, c.User, c.WorkDay,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AddressMutation:
		return c.Address.mutate(ctx, m)
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *DoctorLeaveMutation:
		return c.DoctorLeave.mutate(ctx, m)
	case *DoctorProfileMutation:
		return c.DoctorProfile.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *PatientProfileMutation:
		return c.PatientProfile.mutate(ctx, m)
	case *ScheduleExceptionMutation:
		return c.ScheduleException.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WorkDayMutation:
		return c.WorkDay.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AddressClient is a client for the Address schema.
type AddressClient struct {
	config
}

// NewAddressClient returns a client for the Address from the given config.
func NewAddressClient(c config) *AddressClient {
	return &AddressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `address.Hooks(f(g(h())))`.
func (c *AddressClient) Use(hooks ...Hook) {
	c.hooks.Address = append(c.hooks.Address, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `address.Intercept(f(g(h())))`.
func (c *AddressClient) Intercept(interceptors ...Interceptor) {
	c.inters.Address = append(c.inters.Address, interceptors...)
}

// Create returns a builder for creating a Address entity.
func (c *AddressClient) Create() *AddressCreate {
	mutation := newAddressMutation(c.config, OpCreate)
	return &AddressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Address entities.
func (c *AddressClient) CreateBulk(builders ...*AddressCreate) *AddressCreateBulk {
	return &AddressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AddressClient) MapCreateBulk(slice any, setFunc func(*AddressCreate, int)) *AddressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AddressCreateBulk{err: fmt.Errorf("calling to AddressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AddressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AddressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Address.
func (c *AddressClient) Update() *AddressUpdate {
	mutation := newAddressMutation(c.config, OpUpdate)
	return &AddressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AddressClient) UpdateOne(_m *Address) *AddressUpdateOne {
	mutation := newAddressMutation(c.config, OpUpdateOne, withAddress(_m))
	return &AddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AddressClient) UpdateOneID(id uuid.UUID) *AddressUpdateOne {
	mutation := newAddressMutation(c.config, OpUpdateOne, withAddressID(id))
	return &AddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Address.
func (c *AddressClient) Delete() *AddressDelete {
	mutation := newAddressMutation(c.config, OpDelete)
	return &AddressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AddressClient) DeleteOne(_m *Address) *AddressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AddressClient) DeleteOneID(id uuid.UUID) *AddressDeleteOne {
	builder := c.Delete().Where(address.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AddressDeleteOne{builder}
}

// Query returns a query builder for Address.
func (c *AddressClient) Query() *AddressQuery {
	return &AddressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAddress},
		inters: c.Interceptors(),
	}
}

// Get returns a Address entity by its id.
func (c *AddressClient) Get(ctx context.Context, id uuid.UUID) (*Address, error) {
	return c.Query().Where(address.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AddressClient) GetX(ctx context.Context, id uuid.UUID) *Address {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AddressClient) Hooks() []Hook {
	return c.hooks.Address
}

// Interceptors returns the client interceptors.
func (c *AddressClient) Interceptors() []Interceptor {
	return c.inters.Address
}

func (c *AddressClient) mutate(ctx context.Context, m *AddressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AddressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AddressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AddressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Address mutation op: %q", m.Op())
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// DoctorLeaveClient is a client for the DoctorLeave schema.
type DoctorLeaveClient struct {
	config
}

// NewDoctorLeaveClient returns a client for the DoctorLeave from the given config.
func NewDoctorLeaveClient(c config) *DoctorLeaveClient {
	return &DoctorLeaveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctorleave.Hooks(f(g(h())))`.
func (c *DoctorLeaveClient) Use(hooks ...Hook) {
	c.hooks.DoctorLeave = append(c.hooks.DoctorLeave, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctorleave.Intercept(f(g(h())))`.
func (c *DoctorLeaveClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorLeave = append(c.inters.DoctorLeave, interceptors...)
}

// Create returns a builder for creating a DoctorLeave entity.
func (c *DoctorLeaveClient) Create() *DoctorLeaveCreate {
	mutation := newDoctorLeaveMutation(c.config, OpCreate)
	return &DoctorLeaveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorLeave entities.
func (c *DoctorLeaveClient) CreateBulk(builders ...*DoctorLeaveCreate) *DoctorLeaveCreateBulk {
	return &DoctorLeaveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorLeaveClient) MapCreateBulk(slice any, setFunc func(*DoctorLeaveCreate, int)) *DoctorLeaveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorLeaveCreateBulk{err: fmt.Errorf("calling to DoctorLeaveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorLeaveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorLeaveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorLeave.
func (c *DoctorLeaveClient) Update() *DoctorLeaveUpdate {
	mutation := newDoctorLeaveMutation(c.config, OpUpdate)
	return &DoctorLeaveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorLeaveClient) UpdateOne(_m *DoctorLeave) *DoctorLeaveUpdateOne {
	mutation := newDoctorLeaveMutation(c.config, OpUpdateOne, withDoctorLeave(_m))
	return &DoctorLeaveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorLeaveClient) UpdateOneID(id uuid.UUID) *DoctorLeaveUpdateOne {
	mutation := newDoctorLeaveMutation(c.config, OpUpdateOne, withDoctorLeaveID(id))
	return &DoctorLeaveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorLeave.
func (c *DoctorLeaveClient) Delete() *DoctorLeaveDelete {
	mutation := newDoctorLeaveMutation(c.config, OpDelete)
	return &DoctorLeaveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorLeaveClient) DeleteOne(_m *DoctorLeave) *DoctorLeaveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorLeaveClient) DeleteOneID(id uuid.UUID) *DoctorLeaveDeleteOne {
	builder := c.Delete().Where(doctorleave.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorLeaveDeleteOne{builder}
}

// Query returns a query builder for DoctorLeave.
func (c *DoctorLeaveClient) Query() *DoctorLeaveQuery {
	return &DoctorLeaveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorLeave},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorLeave entity by its id.
func (c *DoctorLeaveClient) Get(ctx context.Context, id uuid.UUID) (*DoctorLeave, error) {
	return c.Query().Where(doctorleave.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorLeaveClient) GetX(ctx context.Context, id uuid.UUID) *DoctorLeave {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorLeaveClient) Hooks() []Hook {
	return c.hooks.DoctorLeave
}

// Interceptors returns the client interceptors.
func (c *DoctorLeaveClient) Interceptors() []Interceptor {
	return c.inters.DoctorLeave
}

func (c *DoctorLeaveClient) mutate(ctx context.Context, m *DoctorLeaveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorLeaveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorLeaveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorLeaveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorLeaveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorLeave mutation op: %q", m.Op())
	}
}

// DoctorProfileClient is a client for the DoctorProfile schema.
type DoctorProfileClient struct {
	config
}

// NewDoctorProfileClient returns a client for the DoctorProfile from the given config.
func NewDoctorProfileClient(c config) *DoctorProfileClient {
	return &DoctorProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctorprofile.Hooks(f(g(h())))`.
func (c *DoctorProfileClient) Use(hooks ...Hook) {
	c.hooks.DoctorProfile = append(c.hooks.DoctorProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctorprofile.Intercept(f(g(h())))`.
func (c *DoctorProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorProfile = append(c.inters.DoctorProfile, interceptors...)
}

// Create returns a builder for creating a DoctorProfile entity.
func (c *DoctorProfileClient) Create() *DoctorProfileCreate {
	mutation := newDoctorProfileMutation(c.config, OpCreate)
	return &DoctorProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorProfile entities.
func (c *DoctorProfileClient) CreateBulk(builders ...*DoctorProfileCreate) *DoctorProfileCreateBulk {
	return &DoctorProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorProfileClient) MapCreateBulk(slice any, setFunc func(*DoctorProfileCreate, int)) *DoctorProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorProfileCreateBulk{err: fmt.Errorf("calling to DoctorProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorProfile.
func (c *DoctorProfileClient) Update() *DoctorProfileUpdate {
	mutation := newDoctorProfileMutation(c.config, OpUpdate)
	return &DoctorProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorProfileClient) UpdateOne(_m *DoctorProfile) *DoctorProfileUpdateOne {
	mutation := newDoctorProfileMutation(c.config, OpUpdateOne, withDoctorProfile(_m))
	return &DoctorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorProfileClient) UpdateOneID(id uuid.UUID) *DoctorProfileUpdateOne {
	mutation := newDoctorProfileMutation(c.config, OpUpdateOne, withDoctorProfileID(id))
	return &DoctorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorProfile.
func (c *DoctorProfileClient) Delete() *DoctorProfileDelete {
	mutation := newDoctorProfileMutation(c.config, OpDelete)
	return &DoctorProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorProfileClient) DeleteOne(_m *DoctorProfile) *DoctorProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorProfileClient) DeleteOneID(id uuid.UUID) *DoctorProfileDeleteOne {
	builder := c.Delete().Where(doctorprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorProfileDeleteOne{builder}
}

// Query returns a query builder for DoctorProfile.
func (c *DoctorProfileClient) Query() *DoctorProfileQuery {
	return &DoctorProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorProfile entity by its id.
func (c *DoctorProfileClient) Get(ctx context.Context, id uuid.UUID) (*DoctorProfile, error) {
	return c.Query().Where(doctorprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorProfileClient) GetX(ctx context.Context, id uuid.UUID) *DoctorProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorProfileClient) Hooks() []Hook {
	return c.hooks.DoctorProfile
}

// Interceptors returns the client interceptors.
func (c *DoctorProfileClient) Interceptors() []Interceptor {
	return c.inters.DoctorProfile
}

func (c *DoctorProfileClient) mutate(ctx context.Context, m *DoctorProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorProfile mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id uuid.UUID) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id uuid.UUID) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id uuid.UUID) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Message mutation op: %q", m.Op())
	}
}

// PatientProfileClient is a client for the PatientProfile schema.
type PatientProfileClient struct {
	config
}

// NewPatientProfileClient returns a client for the PatientProfile from the given config.
func NewPatientProfileClient(c config) *PatientProfileClient {
	return &PatientProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patientprofile.Hooks(f(g(h())))`.
func (c *PatientProfileClient) Use(hooks ...Hook) {
	c.hooks.PatientProfile = append(c.hooks.PatientProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patientprofile.Intercept(f(g(h())))`.
func (c *PatientProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.PatientProfile = append(c.inters.PatientProfile, interceptors...)
}

// Create returns a builder for creating a PatientProfile entity.
func (c *PatientProfileClient) Create() *PatientProfileCreate {
	mutation := newPatientProfileMutation(c.config, OpCreate)
	return &PatientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PatientProfile entities.
func (c *PatientProfileClient) CreateBulk(builders ...*PatientProfileCreate) *PatientProfileCreateBulk {
	return &PatientProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientProfileClient) MapCreateBulk(slice any, setFunc func(*PatientProfileCreate, int)) *PatientProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientProfileCreateBulk{err: fmt.Errorf("calling to PatientProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PatientProfile.
func (c *PatientProfileClient) Update() *PatientProfileUpdate {
	mutation := newPatientProfileMutation(c.config, OpUpdate)
	return &PatientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientProfileClient) UpdateOne(_m *PatientProfile) *PatientProfileUpdateOne {
	mutation := newPatientProfileMutation(c.config, OpUpdateOne, withPatientProfile(_m))
	return &PatientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientProfileClient) UpdateOneID(id uuid.UUID) *PatientProfileUpdateOne {
	mutation := newPatientProfileMutation(c.config, OpUpdateOne, withPatientProfileID(id))
	return &PatientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PatientProfile.
func (c *PatientProfileClient) Delete() *PatientProfileDelete {
	mutation := newPatientProfileMutation(c.config, OpDelete)
	return &PatientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientProfileClient) DeleteOne(_m *PatientProfile) *PatientProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientProfileClient) DeleteOneID(id uuid.UUID) *PatientProfileDeleteOne {
	builder := c.Delete().Where(patientprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientProfileDeleteOne{builder}
}

// Query returns a query builder for PatientProfile.
func (c *PatientProfileClient) Query() *PatientProfileQuery {
	return &PatientProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatientProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a PatientProfile entity by its id.
func (c *PatientProfileClient) Get(ctx context.Context, id uuid.UUID) (*PatientProfile, error) {
	return c.Query().Where(patientprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientProfileClient) GetX(ctx context.Context, id uuid.UUID) *PatientProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientProfileClient) Hooks() []Hook {
	return c.hooks.PatientProfile
}

// Interceptors returns the client interceptors.
func (c *PatientProfileClient) Interceptors() []Interceptor {
	return c.inters.PatientProfile
}

func (c *PatientProfileClient) mutate(ctx context.Context, m *PatientProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PatientProfile mutation op: %q", m.Op())
	}
}

// ScheduleExceptionClient is a client for the ScheduleException schema.
type ScheduleExceptionClient struct {
	config
}

// NewScheduleExceptionClient returns a client for the ScheduleException from the given config.
func NewScheduleExceptionClient(c config) *ScheduleExceptionClient {
	return &ScheduleExceptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scheduleexception.Hooks(f(g(h())))`.
func (c *ScheduleExceptionClient) Use(hooks ...Hook) {
	c.hooks.ScheduleException = append(c.hooks.ScheduleException, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scheduleexception.Intercept(f(g(h())))`.
func (c *ScheduleExceptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScheduleException = append(c.inters.ScheduleException, interceptors...)
}

// Create returns a builder for creating a ScheduleException entity.
func (c *ScheduleExceptionClient) Create() *ScheduleExceptionCreate {
	mutation := newScheduleExceptionMutation(c.config, OpCreate)
	return &ScheduleExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScheduleException entities.
func (c *ScheduleExceptionClient) CreateBulk(builders ...*ScheduleExceptionCreate) *ScheduleExceptionCreateBulk {
	return &ScheduleExceptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScheduleExceptionClient) MapCreateBulk(slice any, setFunc func(*ScheduleExceptionCreate, int)) *ScheduleExceptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScheduleExceptionCreateBulk{err: fmt.Errorf("calling to ScheduleExceptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScheduleExceptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScheduleExceptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScheduleException.
func (c *ScheduleExceptionClient) Update() *ScheduleExceptionUpdate {
	mutation := newScheduleExceptionMutation(c.config, OpUpdate)
	return &ScheduleExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScheduleExceptionClient) UpdateOne(_m *ScheduleException) *ScheduleExceptionUpdateOne {
	mutation := newScheduleExceptionMutation(c.config, OpUpdateOne, withScheduleException(_m))
	return &ScheduleExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScheduleExceptionClient) UpdateOneID(id uuid.UUID) *ScheduleExceptionUpdateOne {
	mutation := newScheduleExceptionMutation(c.config, OpUpdateOne, withScheduleExceptionID(id))
	return &ScheduleExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScheduleException.
func (c *ScheduleExceptionClient) Delete() *ScheduleExceptionDelete {
	mutation := newScheduleExceptionMutation(c.config, OpDelete)
	return &ScheduleExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScheduleExceptionClient) DeleteOne(_m *ScheduleException) *ScheduleExceptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScheduleExceptionClient) DeleteOneID(id uuid.UUID) *ScheduleExceptionDeleteOne {
	builder := c.Delete().Where(scheduleexception.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScheduleExceptionDeleteOne{builder}
}

// Query returns a query builder for ScheduleException.
func (c *ScheduleExceptionClient) Query() *ScheduleExceptionQuery {
	return &ScheduleExceptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScheduleException},
		inters: c.Interceptors(),
	}
}

// Get returns a ScheduleException entity by its id.
func (c *ScheduleExceptionClient) Get(ctx context.Context, id uuid.UUID) (*ScheduleException, error) {
	return c.Query().Where(scheduleexception.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScheduleExceptionClient) GetX(ctx context.Context, id uuid.UUID) *ScheduleException {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScheduleExceptionClient) Hooks() []Hook {
	return c.hooks.ScheduleException
}

// Interceptors returns the client interceptors.
func (c *ScheduleExceptionClient) Interceptors() []Interceptor {
	return c.inters.ScheduleException
}

func (c *ScheduleExceptionClient) mutate(ctx context.Context, m *ScheduleExceptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScheduleExceptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScheduleExceptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScheduleExceptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScheduleExceptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ScheduleException mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// WorkDayClient is a client for the WorkDay schema.
type WorkDayClient struct {
	config
}

// NewWorkDayClient returns a client for the WorkDay from the given config.
func NewWorkDayClient(c config) *WorkDayClient {
	return &WorkDayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workday.Hooks(f(g(h())))`.
func (c *WorkDayClient) Use(hooks ...Hook) {
	c.hooks.WorkDay = append(c.hooks.WorkDay, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workday.Intercept(f(g(h())))`.
func (c *WorkDayClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkDay = append(c.inters.WorkDay, interceptors...)
}

// Create returns a builder for creating a WorkDay entity.
func (c *WorkDayClient) Create() *WorkDayCreate {
	mutation := newWorkDayMutation(c.config, OpCreate)
	return &WorkDayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkDay entities.
func (c *WorkDayClient) CreateBulk(builders ...*WorkDayCreate) *WorkDayCreateBulk {
	return &WorkDayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkDayClient) MapCreateBulk(slice any, setFunc func(*WorkDayCreate, int)) *WorkDayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkDayCreateBulk{err: fmt.Errorf("calling to WorkDayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkDayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkDayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkDay.
func (c *WorkDayClient) Update() *WorkDayUpdate {
	mutation := newWorkDayMutation(c.config, OpUpdate)
	return &WorkDayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkDayClient) UpdateOne(_m *WorkDay) *WorkDayUpdateOne {
	mutation := newWorkDayMutation(c.config, OpUpdateOne, withWorkDay(_m))
	return &WorkDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkDayClient) UpdateOneID(id uuid.UUID) *WorkDayUpdateOne {
	mutation := newWorkDayMutation(c.config, OpUpdateOne, withWorkDayID(id))
	return &WorkDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkDay.
func (c *WorkDayClient) Delete() *WorkDayDelete {
	mutation := newWorkDayMutation(c.config, OpDelete)
	return &WorkDayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkDayClient) DeleteOne(_m *WorkDay) *WorkDayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkDayClient) DeleteOneID(id uuid.UUID) *WorkDayDeleteOne {
	builder := c.Delete().Where(workday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkDayDeleteOne{builder}
}

// Query returns a query builder for WorkDay.
func (c *WorkDayClient) Query() *WorkDayQuery {
	return &WorkDayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkDay},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkDay entity by its id.
func (c *WorkDayClient) Get(ctx context.Context, id uuid.UUID) (*WorkDay, error) {
	return c.Query().Where(workday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkDayClient) GetX(ctx context.Context, id uuid.UUID) *WorkDay {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkDayClient) Hooks() []Hook {
	return c.hooks.WorkDay
}

// Interceptors returns the client interceptors.
func (c *WorkDayClient) Interceptors() []Interceptor {
	return c.inters.WorkDay
}

func (c *WorkDayClient) mutate(ctx context.Context, m *WorkDayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkDayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkDayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkDayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WorkDay mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Address, Appointment, DoctorLeave, DoctorProfile, Message, PatientProfile,
		ScheduleException, User, WorkDay []ent.Hook
	}
	inters struct {
		Address, Appointment, DoctorLeave, DoctorProfile, Message, PatientProfile,
		ScheduleException, User, WorkDay []ent.Interceptor
	}
)
