package validation

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mkrause/wordspace/internal/wserrors"
)

// FilePermissions defines secure file permissions for different file types
// a word space or its CLI touches: the disco.config metadata file, the
// sparse/dense store's data files, CLUTO export outputs, and the
// directories holding them.
type FilePermissions struct {
	ConfigFile     os.FileMode // disco.config (readable by owner only)
	DataFile       os.FileMode // index files, CLUTO export outputs
	ExecutableFile os.FileMode
	Directory      os.FileMode
	TempFile       os.FileMode
}

// DefaultPermissions returns secure default file permissions.
func DefaultPermissions() FilePermissions {
	if runtime.GOOS == "windows" {
		return FilePermissions{
			ConfigFile:     0600,
			DataFile:       0644,
			ExecutableFile: 0755,
			Directory:      0755,
			TempFile:       0600,
		}
	}

	return FilePermissions{
		ConfigFile:     0600,
		DataFile:       0644,
		ExecutableFile: 0755,
		Directory:      0755,
		TempFile:       0600,
	}
}

// RestrictivePermissions returns more restrictive file permissions.
func RestrictivePermissions() FilePermissions {
	return FilePermissions{
		ConfigFile:     0600,
		DataFile:       0600,
		ExecutableFile: 0700,
		Directory:      0700,
		TempFile:       0600,
	}
}

func modeFor(p FilePermissions, fileType string) os.FileMode {
	switch fileType {
	case "config":
		return p.ConfigFile
	case "data":
		return p.DataFile
	case "executable":
		return p.ExecutableFile
	case "directory":
		return p.Directory
	case "temp":
		return p.TempFile
	default:
		return p.DataFile
	}
}

// SetSecureFilePermissions sets secure permissions on a file based on its type.
func SetSecureFilePermissions(filePath string, fileType string) error {
	mode := modeFor(DefaultPermissions(), fileType)
	if err := os.Chmod(filePath, mode); err != nil {
		return wserrors.IO("set permissions on "+filePath, err)
	}
	return nil
}

// ValidateFilePermissions checks if a file has secure permissions.
func ValidateFilePermissions(filePath string, fileType string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return wserrors.IO("stat "+filePath, err)
	}

	// Permission checking is not meaningful on Windows.
	if runtime.GOOS == "windows" {
		return nil
	}

	currentMode := info.Mode().Perm()

	if currentMode&0002 != 0 {
		return wserrors.IO("validate permissions on "+filePath, errWorldWritable)
	}

	if (fileType == "config" || fileType == "temp") && currentMode&0020 != 0 {
		return wserrors.IO("validate permissions on "+filePath, errGroupWritable)
	}

	return nil
}

var (
	errWorldWritable = fileModeError("file is world-writable")
	errGroupWritable = fileModeError("sensitive file is group-writable")
)

type fileModeError string

func (e fileModeError) Error() string { return string(e) }

// CreateSecureFile creates a file with secure permissions, creating its
// parent directory first if needed.
func CreateSecureFile(filePath string, fileType string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, DefaultPermissions().Directory); err != nil {
		return nil, wserrors.IO("create directory "+dir, err)
	}

	mode := modeFor(DefaultPermissions(), fileType)
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return nil, wserrors.IO("create file "+filePath, err)
	}
	return file, nil
}

// CreateSecureDirectory creates a directory with secure permissions.
func CreateSecureDirectory(dirPath string) error {
	if err := os.MkdirAll(dirPath, DefaultPermissions().Directory); err != nil {
		return wserrors.IO("create directory "+dirPath, err)
	}
	return nil
}

// ValidateDirectoryPermissions checks if a directory has secure permissions.
func ValidateDirectoryPermissions(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return wserrors.IO("stat "+dirPath, err)
	}
	if !info.IsDir() {
		return wserrors.IO("validate directory "+dirPath, errNotADirectory)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	if info.Mode().Perm()&0002 != 0 {
		return wserrors.IO("validate directory "+dirPath, errWorldWritable)
	}

	return nil
}

var errNotADirectory = fileModeError("path is not a directory")

// SecureFileOperations provides read/write helpers that enforce the
// permissions above, used by internal/cluexport and the CLI's export
// subcommand when writing word-frequency lists and CLUTO files to disk.
type SecureFileOperations struct {
	permissions FilePermissions
}

// NewSecureFileOperations creates a new SecureFileOperations instance.
func NewSecureFileOperations() *SecureFileOperations {
	return &SecureFileOperations{permissions: DefaultPermissions()}
}

// WriteSecureFile writes data to a file with secure permissions.
func (sfo *SecureFileOperations) WriteSecureFile(filePath string, data []byte, fileType string) error {
	file, err := CreateSecureFile(filePath, fileType)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return wserrors.IO("write file "+filePath, err)
	}
	return nil
}

// ReadSecureFile reads data from a file after validating permissions. A
// permission mismatch is not fatal — the file may still be readable — so
// the error from ValidateFilePermissions is ignored here.
func (sfo *SecureFileOperations) ReadSecureFile(filePath string, fileType string) ([]byte, error) {
	_ = ValidateFilePermissions(filePath, fileType)

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, wserrors.IO("read file "+filePath, err)
	}
	return data, nil
}
