//go:build !linux && !darwin

package renamer

func renameNoReplace(oldPath, newPath string) error {
	return renameChecked(oldPath, newPath)
}
