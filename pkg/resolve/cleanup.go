package resolve

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-scaffold/pkg/prompt"
)

// ConfirmAndDelete asks whether a previously downloaded file or directory
// may be deleted and re-downloaded. It returns true when the path was
// deleted. Declining the delete asks whether to reuse the existing copy
// instead; declining that too returns ErrDeclined, which callers treat as
// a clean stop. Under no-input mode deletion proceeds unconditionally.
func (r *Resolver) ConfirmAndDelete(ctx context.Context, path string, noInput bool) (bool, error) {
	okToDelete := true
	if !noInput {
		var err error
		okToDelete, err = r.driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("You've downloaded %s before. Is it okay to delete and re-download it?", path),
			Default: true,
		})
		if err != nil {
			return false, err
		}
	}

	if okToDelete {
		info, err := os.Stat(path)
		if err != nil {
			return false, fmt.Errorf("resolve: inspect %s: %w", path, err)
		}
		if info.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			return false, fmt.Errorf("resolve: delete %s: %w", path, err)
		}
		return true, nil
	}

	okToReuse, err := r.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Do you want to re-use the existing version?",
		Default: true,
	})
	if err != nil {
		return false, err
	}
	if okToReuse {
		return false, nil
	}
	return false, ErrDeclined
}
