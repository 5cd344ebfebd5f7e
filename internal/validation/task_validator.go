package validation

// Field length limits for task fields.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxCategoryLength    = 50
)

// TaskValidator provides validation for the individual task fields.
// All checks operate on trimmed values; callers store the trimmed form.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title.
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsWithinMaxLength(trimmed, MaxTitleLength) {
		validationError.AddInvalidLengthError("title", trimmed, MaxTitleLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDescription validates an optional task description. A nil
// description is valid.
func (tv *TaskValidator) ValidateDescription(description *string) error {
	if description == nil {
		return nil
	}

	if !tv.validator.IsWithinMaxLength(*description, MaxDescriptionLength) {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError("description", *description, MaxDescriptionLength)
		return validationError
	}

	return nil
}

// ValidateDueDate validates a due date string: YYYY-MM-DD, a real
// calendar date, and not strictly before today.
func (tv *TaskValidator) ValidateDueDate(dueDate string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(dueDate)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("due date")
		return validationError
	}

	parsed, err := tv.validator.ParseDate(trimmed)
	if err != nil {
		validationError.AddInvalidFormatError("due date", trimmed, "YYYY-MM-DD")
		return validationError
	}

	if tv.validator.IsPastDate(parsed) {
		validationError.AddInvalidValueError("due date", trimmed, "cannot be in the past")
		return validationError
	}

	return nil
}

// ValidateDueDateFormat validates only the shape of a due date string,
// without the past-date rule. Used when reading stored snapshots, which
// may legitimately contain dates that have since gone by.
func (tv *TaskValidator) ValidateDueDateFormat(dueDate string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(dueDate)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("due date")
		return validationError
	}

	if _, err := tv.validator.ParseDate(trimmed); err != nil {
		validationError.AddInvalidFormatError("due date", trimmed, "YYYY-MM-DD")
		return validationError
	}

	return nil
}

// ValidateCategory validates a task category.
func (tv *TaskValidator) ValidateCategory(category string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(category)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("category")
		return validationError
	}

	if !tv.validator.IsWithinMaxLength(trimmed, MaxCategoryLength) {
		validationError.AddInvalidLengthError("category", trimmed, MaxCategoryLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
