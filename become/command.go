package become

import "strings"

// Result is what the host spawns. RequiresPromptScan tells the host to watch
// the output for a password prompt, it is set for every command.
type Result struct {
	Command            string `json:"command"`
	RequiresPromptScan bool   `json:"requires_prompt_scan"`
}

// SuccessWrapper wraps a command so that its output carries a success marker.
type SuccessWrapper interface {
	WrapSuccess(cmd string) string
}

type SuccessWrapperFunc func(cmd string) string

func (f SuccessWrapperFunc) WrapSuccess(cmd string) string {
	return f(cmd)
}

// BuildCommand returns "<exe> <flags> -u <user> <wrapped cmd>".
// Empty fragments are skipped so that no double space is produced.
// An empty cmd is returned unchanged.
func BuildCommand(cmd string, wrapper SuccessWrapper, cfg *Config) *Result {
	res := &Result{
		RequiresPromptScan: true,
	}

	if cmd == "" {
		return res
	}

	wrapped := cmd
	if wrapper != nil {
		wrapped = wrapper.WrapSuccess(cmd)
	}

	command := []string{cfg.GetExe()}
	if flags := strings.TrimSpace(cfg.GetFlags()); flags != "" {
		command = append(command, flags)
	}
	command = append(command, "-u", cfg.GetUser(), wrapped)

	res.Command = strings.Join(command, " ")
	return res
}
