package domain

type Channel struct {
	Name    string
	Members []string
}

func (c Channel) HasMember(username string) bool {
	for _, member := range c.Members {
		if member == username {
			return true
		}
	}
	return false
}
