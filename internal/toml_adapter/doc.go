// Package toml_adapter reads `.toml` configuration files into the
// format-agnostic config.Model. It understands the same concepts as the HCL
// adapter:
//
//	[engine]
//	functions = ["classify", "join"]
//
//	[[summary]]
//	name = "by_group"
//
//	[[summary.stage]]
//	type = "LIST2ENTITY_CLASSIFY"
//	args = ["group"]
//
//	[[relation]]
//	resource = "route"
//	file = "routes.json"
//
// Unknown keys are rejected.
package toml_adapter
