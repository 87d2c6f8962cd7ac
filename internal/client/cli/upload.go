package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Upload sends an image to object storage and prints its public URL.
//
//	upload <file>                  just upload
//	upload <file> profile          and set it as the profile image
//	upload <file> project <id>     and set it as the project image
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: a file is required", errUsage)
	}
	path := args[0]

	data, err := readFile(path)
	if err != nil {
		return err
	}

	url, err := a.admin.UploadImage(ctx, path, contentType(path, data), data)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Uploaded:", url)

	if len(args) == 1 {
		return nil
	}

	k, id, err := parseArgs(args[1:], true)
	if err != nil {
		return err
	}
	s := a.snapshot()

	switch k {
	case kindProfile:
		if s.Profile == nil {
			return common.ErrNoProfile
		}
		p := *s.Profile
		p.ProfileImageURL = url
		_, err = a.admin.UpdateProfile(ctx, p)
		return a.done(err, "Profile image updated")
	case kindProjects:
		p, err := find(s.Projects, id)
		if err != nil {
			return err
		}
		p.ImageURL = url
		_, err = a.admin.UpdateProject(ctx, p)
		return a.done(err, "Project image updated")
	}
	return fmt.Errorf("images can be attached to the profile or a project, not %s", k)
}

func contentType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}

