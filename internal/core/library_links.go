package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"solbuild/internal/types"
)

// ParseLibraryLinks unflattens "file:library:address" entries into the
// nested link table. Only the first three colon-delimited fields count;
// anything after the third is ignored. A repeated (file, library) pair
// keeps the address seen last.
func ParseLibraryLinks(entries []string) (types.Libraries, error) {
	libraries := types.Libraries{}
	for _, entry := range entries {
		fields := strings.SplitN(entry, ":", 4)
		if len(fields) < 3 {
			return nil, malformedLink(entry)
		}
		file, library, address := fields[0], fields[1], fields[2]
		if file == "" || library == "" || address == "" {
			return nil, malformedLink(entry)
		}
		if _, ok := libraries[file]; !ok {
			libraries[file] = map[string]string{}
		}
		libraries[file][library] = address
	}
	return libraries, nil
}

func malformedLink(entry string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("malformed library link: " + entry)
}
