package provision

// ItemStatus describes the outcome of a single provisioning item
type ItemStatus string

const (
	// StatusPresent means the item already existed on disk
	StatusPresent ItemStatus = "present"

	// StatusInstalled means the item was materialized during this run
	StatusInstalled ItemStatus = "installed"

	// StatusSkipped means the item was not attempted
	StatusSkipped ItemStatus = "skipped"

	// StatusFailed means the item could not be materialized
	StatusFailed ItemStatus = "failed"
)

// ItemResult is the recorded outcome of one provisioning item
type ItemResult struct {
	Name   string
	Status ItemStatus
	Reason string
}

// InstallReport summarizes the per item outcomes of one provisioning run in
// list order. Item failures are recorded here and never abort the run.
type InstallReport struct {
	Items []ItemResult
}

func (r *InstallReport) add(name string, status ItemStatus, reason string) {
	r.Items = append(r.Items, ItemResult{Name: name, Status: status, Reason: reason})
}

// Failed returns the number of failed items
func (r *InstallReport) Failed() int {
	count := 0
	for _, item := range r.Items {
		if item.Status == StatusFailed {
			count++
		}
	}

	return count
}

// Rows returns the report as table rows
func (r *InstallReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Items))
	for _, item := range r.Items {
		rows = append(rows, []string{item.Name, string(item.Status), item.Reason})
	}

	return rows
}
