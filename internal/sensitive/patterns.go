package sensitive

import (
	"regexp"
)

// Pattern recognises a credential by the shape of its value.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
}

var ValuePatterns = []Pattern{
	{Name: "AWS Access Key ID", Regex: regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{Name: "GitHub Token", Regex: regexp.MustCompile(`(ghp|gho|ghu|ghs)_[0-9a-zA-Z]{36}`)},
	{Name: "GitHub Fine-Grained PAT", Regex: regexp.MustCompile(`github_pat_[0-9a-zA-Z_]{22,}`)},
	{Name: "GitLab Token", Regex: regexp.MustCompile(`gl(pat|dt|ft)-[0-9a-zA-Z\-]{20}`)},
	{Name: "Slack Token", Regex: regexp.MustCompile(`xox[baprs]-[0-9]{10,13}-[0-9]{10,13}(-[0-9a-zA-Z]{24})?`)},
	{Name: "Private Key", Regex: regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`)},
	{Name: "Google API Key", Regex: regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`)},
	{Name: "Stripe Key", Regex: regexp.MustCompile(`(sk|rk)_(live|test)_[0-9a-zA-Z]{24,}`)},
	{Name: "OpenAI API Key", Regex: regexp.MustCompile(`sk-[a-zA-Z0-9_-]{20,}`)},
	{Name: "SendGrid API Key", Regex: regexp.MustCompile(`SG\.[a-zA-Z0-9=_\-\.]{66}`)},
	{Name: "Docker Hub PAT", Regex: regexp.MustCompile(`dckr_pat_[0-9a-zA-Z_-]{27}`)},
	{Name: "JWT", Regex: regexp.MustCompile(`eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`)},
	{Name: "URL Credentials", Regex: regexp.MustCompile(`[a-z][a-z0-9+.-]*://[^/\s:@]*:[^/\s@]+@`)},
}
