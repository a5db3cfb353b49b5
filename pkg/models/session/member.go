package session

import "unicode/utf8"

// Member is a chat participant as the front-end knows them.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile bool   `json:"mobile,omitempty"`
}

// assignIcons gives every member the first letter of their name, moving to
// the next code point while the letter is taken.
func assignIcons(members []Member) []rune {
	icons := make([]rune, 0, len(members))
	used := make(map[rune]struct{}, len(members))
	for _, m := range members {
		c, _ := utf8.DecodeRuneInString(m.Name)
		if c == utf8.RuneError {
			c = '?'
		}
		for {
			if _, taken := used[c]; !taken {
				break
			}
			c++
		}
		used[c] = struct{}{}
		icons = append(icons, c)
	}
	return icons
}

func uniqueMembers(members []Member) (unique []Member) {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, c := seen[m.ID]; c {
			continue
		}
		seen[m.ID] = struct{}{}
		unique = append(unique, m)
	}
	return
}
