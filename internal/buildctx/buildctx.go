// Package buildctx models the read-only CI build context that supplies
// presentation defaults for outbound notifications.
package buildctx

import "os"

// Build result values as reported by Jenkins.
const (
	ResultSuccess  = "SUCCESS"
	ResultUnstable = "UNSTABLE"
	ResultFailure  = "FAILURE"
	ResultAborted  = "ABORTED"
	ResultUnknown  = "UNKNOWN"
)

// Context carries the job name, build URL and build result of the run that
// triggered the notification. The sender never mutates it.
type Context struct {
	JobName  string `json:"job_name,omitempty"`
	BuildURL string `json:"build_url,omitempty"`
	Result   string `json:"result,omitempty"`
}

// FromEnv reads the context from the environment variables Jenkins exposes
// to build steps. Missing variables leave the corresponding field empty.
func FromEnv() Context {
	return Context{
		JobName:  os.Getenv("JOB_NAME"),
		BuildURL: os.Getenv("BUILD_URL"),
		Result:   os.Getenv("BUILD_RESULT"),
	}
}

// ResultLabel returns the build result, or ResultUnknown when none was set.
func (c Context) ResultLabel() string {
	if c.Result == "" {
		return ResultUnknown
	}
	return c.Result
}
