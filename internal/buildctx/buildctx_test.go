package buildctx

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv("JOB_NAME", "demo-job")
	t.Setenv("BUILD_URL", "http://x/1")
	t.Setenv("BUILD_RESULT", ResultSuccess)

	c := FromEnv()
	if c.JobName != "demo-job" || c.BuildURL != "http://x/1" || c.Result != ResultSuccess {
		t.Fatalf("unexpected context: %+v", c)
	}
}

func TestFromEnvMissing(t *testing.T) {
	t.Setenv("JOB_NAME", "")
	t.Setenv("BUILD_URL", "")
	t.Setenv("BUILD_RESULT", "")

	c := FromEnv()
	if c.JobName != "" || c.BuildURL != "" || c.Result != "" {
		t.Fatalf("expected empty context, got %+v", c)
	}
}

func TestResultLabel(t *testing.T) {
	if got := (Context{}).ResultLabel(); got != ResultUnknown {
		t.Fatalf("expected %q for empty result, got %q", ResultUnknown, got)
	}
	if got := (Context{Result: ResultAborted}).ResultLabel(); got != ResultAborted {
		t.Fatalf("expected %q, got %q", ResultAborted, got)
	}
}
