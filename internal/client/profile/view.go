package profile

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"profilectl/internal/client/api"
	"profilectl/internal/client/timers"
)

// Field names one editable field family.
type Field string

const (
	FieldPassword Field = "password"
	FieldAlias    Field = "alias"
	FieldEmail    Field = "email"
	FieldMobile   Field = "mobile"
)

// Guard is the session gate the view consults before any mutating action.
type Guard interface {
	IsAuthenticated(ctx context.Context) bool
	HandleSessionExpired(ctx context.Context)
	AccessToken(ctx context.Context) string
}

// UnauthenticatedNotice is the general notice shown when no bearer token is
// stored locally.
const UnauthenticatedNotice = "You are not authenticated. Please login again."

// DefaultSuccessTTL is how long a success message stays before self-clearing.
const DefaultSuccessTTL = 3 * time.Second

// EditBuffer is the mutable working copy backing the open edit forms.
type EditBuffer struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
	AliasName       string
	Email           string
	Mobile          string
}

// Config wires a View to its collaborators.
type Config struct {
	Guard Guard
	Auth  api.AuthAPI
	User  api.UserAPI

	// Identity is the loosely-named identity object supplied by the
	// embedding application.
	Identity map[string]any

	// OnProfileUpdate receives the updated identity object after every
	// successful field commit.
	OnProfileUpdate func(identity map[string]any)

	Timers     *timers.Set
	SuccessTTL time.Duration
	Logger     zerolog.Logger
}

// View owns the profile snapshot and the per-field edit cycle. All exported
// methods are safe for concurrent use; the coarse loading flag additionally
// blocks every mutating action while any one submission is in flight.
type View struct {
	mu sync.Mutex

	guard           Guard
	auth            api.AuthAPI
	user            api.UserAPI
	identity        map[string]any
	onProfileUpdate func(map[string]any)
	timers          *timers.Set
	successTTL      time.Duration
	logger          zerolog.Logger

	record      Record
	buf         EditBuffer
	editing     map[Field]bool
	fieldErrors map[Field]string
	generalErr  string
	success     string
	warning     string
	loading     bool
	closed      bool
}

func NewView(cfg Config) *View {
	if cfg.SuccessTTL <= 0 {
		cfg.SuccessTTL = DefaultSuccessTTL
	}
	if cfg.Timers == nil {
		cfg.Timers = timers.NewSet()
	}

	v := &View{
		guard:           cfg.Guard,
		auth:            cfg.Auth,
		user:            cfg.User,
		onProfileUpdate: cfg.OnProfileUpdate,
		timers:          cfg.Timers,
		successTTL:      cfg.SuccessTTL,
		logger:          cfg.Logger,
		editing:         make(map[Field]bool),
		fieldErrors:     make(map[Field]string),
	}
	v.SetIdentity(cfg.Identity)
	return v
}

// SetIdentity re-synchronizes the record (and the non-password edit buffers)
// from a fresh identity object. The password triple is left untouched.
func (v *View) SetIdentity(identity map[string]any) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Own a copy; commits write into this map and must never reach the
	// caller's object.
	own := make(map[string]any, len(identity))
	for k, val := range identity {
		own[k] = val
	}
	v.identity = own
	v.record = NewRecord(own)
	v.buf.AliasName = v.record.AliasName
	v.buf.Email = v.record.Email
	v.buf.Mobile = v.record.Mobile
}

// BeginEdit opens the edit form for one field. It is refused while another
// submission is loading or when the actor is not authenticated.
func (v *View) BeginEdit(ctx context.Context, field Field) bool {
	if v.isLoading() || v.isClosed() {
		return false
	}
	if !v.checkAuth(ctx) {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.editing[field] = true
	return true
}

// CancelEdit discards the field's working copy, clears its messages, and
// closes the form. Calling it when the form is already closed is a no-op.
func (v *View) CancelEdit(field Field) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.editing[field] {
		return
	}

	v.clearMessagesLocked()
	switch field {
	case FieldPassword:
		v.buf.CurrentPassword = ""
		v.buf.NewPassword = ""
		v.buf.ConfirmPassword = ""
	case FieldAlias:
		v.buf.AliasName = v.record.AliasName
	case FieldEmail:
		v.buf.Email = v.record.Email
	case FieldMobile:
		v.buf.Mobile = v.record.Mobile
	}
	v.editing[field] = false
}

// Close tears the view down and cancels any outstanding deferred actions
// (success auto-clear and the like) so they never touch a disposed view.
func (v *View) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.timers.Stop()
}

// Input setters for the edit buffers.

func (v *View) SetAliasInput(alias string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buf.AliasName = alias
}

func (v *View) SetEmailInput(email string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buf.Email = email
}

func (v *View) SetMobileInput(mobile string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buf.Mobile = mobile
}

func (v *View) SetPasswordInput(current, newPassword, confirm string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buf.CurrentPassword = current
	v.buf.NewPassword = newPassword
	v.buf.ConfirmPassword = confirm
}

// SetWarning surfaces a session warning on the view. The session guard's
// OnWarning hook is typically wired here.
func (v *View) SetWarning(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warning = msg
}

// State accessors.

func (v *View) Record() Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.record
}

func (v *View) Buffer() EditBuffer {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.buf
}

func (v *View) IsEditing(field Field) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing[field]
}

func (v *View) FieldError(field Field) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fieldErrors[field]
}

func (v *View) GeneralError() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.generalErr
}

func (v *View) Success() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.success
}

func (v *View) Warning() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.warning
}

func (v *View) Loading() bool {
	return v.isLoading()
}

// Identity returns a copy of the current identity object.
func (v *View) Identity() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]any, len(v.identity))
	for k, val := range v.identity {
		out[k] = val
	}
	return out
}

// internal helpers

func (v *View) checkAuth(ctx context.Context) bool {
	if !v.guard.IsAuthenticated(ctx) {
		v.mu.Lock()
		v.generalErr = UnauthenticatedNotice
		v.mu.Unlock()
		return false
	}
	return true
}

func (v *View) clearMessages() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clearMessagesLocked()
}

func (v *View) clearMessagesLocked() {
	v.fieldErrors = make(map[Field]string)
	v.generalErr = ""
	v.success = ""
	v.warning = ""
}

func (v *View) setFieldError(field Field, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fieldErrors[field] = msg
}

func (v *View) setSuccess(msg string) {
	v.mu.Lock()
	v.success = msg
	v.mu.Unlock()

	v.timers.AfterFunc(v.successTTL, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.success == msg {
			v.success = ""
		}
	})
}

func (v *View) isLoading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *View) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *View) setLoading(loading bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = loading
}
