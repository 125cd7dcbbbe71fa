package domain

// JobState tracks a summarization job through its lifecycle. Every job
// moves Created -> Fetching -> Extracting -> Summarizing -> Persisting
// -> Done; a failure at any step moves it to Failed and ends the job.
type JobState string

const (
	JobStateCreated     JobState = "created"
	JobStateFetching    JobState = "fetching"
	JobStateExtracting  JobState = "extracting"
	JobStateSummarizing JobState = "summarizing"
	JobStatePersisting  JobState = "persisting"
	JobStateDone        JobState = "done"
	JobStateFailed      JobState = "failed"
)

// SummaryJob is the transient unit of work handed to the dispatcher:
// the record identifier plus the URL to summarize. The record store
// owns all durable state; a job holds no other reference.
type SummaryJob struct {
	URL string
	ID  int64
}
