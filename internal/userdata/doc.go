// Package userdata manages the ~/.skillfolio/ directory: the skills data
// file, the format-version sidecar, and user preferences. It handles path
// resolution with environment overrides and the data-format compatibility
// check performed at startup.
package userdata
