// Package hcl_adapter reads `.hcl` configuration files into the
// format-agnostic config.Model.
//
// Three top-level blocks are understood: at most one `engine` block per file
// naming the functions to expose, any number of `summary "<name>"` blocks each
// holding ordered `stage` blocks, and `relation "<resource>"` blocks pointing
// at a JSON or YAML file of rows. Relation file paths are relative to the
// config file that declares them.
package hcl_adapter
