package envfile

// Entry is one KEY=value assignment parsed from a dotenv file.
type Entry struct {
	Key           string
	Value         string
	Line          int
	InlineComment string
	HasComment    bool
}
