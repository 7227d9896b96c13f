package model

type Status string

const (
	StatusNew        Status = "NEW"
	StatusProcessing Status = "PROCESSING"
	StatusDone       Status = "DONE"
	StatusError      Status = "ERROR"
)

// Terminal reports whether the service will not move the work item any further.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusError
}

type Product string

const (
	ProductHLD        Product = "HLD"
	ProductLLD        Product = "LLD"
	ProductStory      Product = "STORY"
	ProductScenario   Product = "SCENARIO"
	ProductCode       Product = "CODE"
	ProductReverseEng Product = "REVERSE_ENG"
)

// WorkItemSummary is the stable client view of a server side work item.
type WorkItemSummary struct {
	ID       string `json:"id"`
	Status   Status `json:"status"`
	FileName string `json:"fileName,omitempty"`
}
