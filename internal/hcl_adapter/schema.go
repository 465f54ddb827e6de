package hcl_adapter

// EngineBlock configures the evaluation engine.
type EngineBlock struct {
	Functions []string `hcl:"functions,optional"`
}

// Summary is one `summary "<name>"` block.
type Summary struct {
	Name   string   `hcl:"name,label"`
	Stages []*Stage `hcl:"stage,block"`
}

// Stage is one `stage` block inside a summary.
type Stage struct {
	Type string   `hcl:"type,optional"`
	Args []string `hcl:"args,optional"`
	Text *string  `hcl:"text,optional"`
}

// Relation is one `relation "<resource>"` block.
type Relation struct {
	Resource string `hcl:"resource,label"`
	File     string `hcl:"file,optional"`
	URL      string `hcl:"url,optional"`
	Timeout  string `hcl:"timeout,optional"`
	KeyField string `hcl:"key_field,optional"`
	IDField  string `hcl:"id_field,optional"`
}
