package leave

import "fmt"

// =============================================================================
// GREETING / PROMPT FORMATTER - Pure text rendering, no mutation
// =============================================================================

// Greeting renders the personalized greeting. No validation of name;
// always succeeds.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s! How can I assist you with leave management today?", name)
}

// LeaveEmail renders a leave request email draft for a known employee.
// The dates and reason are used verbatim: this is independent of
// apply_leave and performs no date validation and no state access.
func LeaveEmail(dir *Directory, id EmployeeID, startDate, endDate, reason string) (string, error) {
	emp, ok := dir.Lookup(id)
	if !ok {
		return "", &UnknownEmployeeError{EmployeeID: id}
	}
	return fmt.Sprintf(
		"Dear Manager,\n\n"+
			"I would like to request leave from %s to %s due to %s. "+
			"Please let me know if this can be approved.\n\n"+
			"Regards,\n%s",
		startDate, endDate, reason, emp.Name,
	), nil
}
