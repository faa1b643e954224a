package identity

import (
	"os"
	"os/exec"
	"os/user"
	"strings"
)

// forgeHost is the only remote host we extract account handles from.
// A handle parsed out of an arbitrary host would as likely be a project
// or org name as a person.
const forgeHost = "github.com"

// Identity collects the operator-identifying strings discoverable from the
// current process environment and working directory.
type Identity struct {
	Username    string // OS account name
	HomeDir     string // absolute home directory path
	GitName     string // git config user.name
	GitEmail    string // git config user.email
	ForgeHandle string // account handle parsed from the origin remote
}

// Detect queries the OS and git freshly; nothing is cached between calls.
// Fields that cannot be determined are left empty (not an error).
func Detect(cwd string) *Identity {
	id := &Identity{}

	if u, err := user.Current(); err == nil {
		id.Username = u.Username
	}
	if home, err := os.UserHomeDir(); err == nil {
		id.HomeDir = home
	}

	if name, err := gitCommand(cwd, "config", "--get", "user.name"); err == nil {
		id.GitName = strings.TrimSpace(name)
	}
	if email, err := gitCommand(cwd, "config", "--get", "user.email"); err == nil {
		id.GitEmail = strings.TrimSpace(email)
	}
	if remote, err := gitCommand(cwd, "config", "--get", "remote.origin.url"); err == nil {
		id.ForgeHandle = parseForgeHandle(strings.TrimSpace(remote))
	}

	return id
}

// Candidates returns the deduplicated, order-preserving list of strings to
// anonymize: OS account name, home directory, git display name, the local
// part of the git email, the forge handle, then any caller-supplied extras.
// Empty and whitespace-only candidates are dropped.
func (id *Identity) Candidates(extra ...string) []string {
	raw := []string{
		id.Username,
		id.HomeDir,
		id.GitName,
		emailLocalPart(id.GitEmail),
		id.ForgeHandle,
	}
	raw = append(raw, extra...)

	seen := make(map[string]bool, len(raw))
	var candidates []string
	for _, c := range raw {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// parseForgeHandle extracts the account handle from a remote URL, supporting
// the HTTPS form https://github.com/HANDLE/repo and the SSH form
// git@github.com:HANDLE/repo. Remotes on any other host yield nothing.
func parseForgeHandle(remoteURL string) string {
	var rest string
	switch {
	case strings.HasPrefix(remoteURL, "https://"+forgeHost+"/"):
		rest = strings.TrimPrefix(remoteURL, "https://"+forgeHost+"/")
	case strings.HasPrefix(remoteURL, "git@"+forgeHost+":"):
		rest = strings.TrimPrefix(remoteURL, "git@"+forgeHost+":")
	default:
		return ""
	}

	handle, _, found := strings.Cut(rest, "/")
	if !found {
		return ""
	}
	return handle
}

func emailLocalPart(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return local
}

// gitCommand runs a git command in the specified directory
func gitCommand(cwd string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = cwd

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return string(output), nil
}
