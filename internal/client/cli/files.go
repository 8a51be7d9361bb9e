package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/studytrack/internal/client/models"
	"github.com/dmitrijs2005/studytrack/internal/client/validation"
	"github.com/dmitrijs2005/studytrack/internal/filex"
)

// filesView lists the files of one subject.
func (a *App) filesView(ctx context.Context, params map[string]string) error {
	subjectID, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	files, err := a.api.ListFiles(ctx, subjectID)
	if err != nil {
		fmt.Fprintln(a.out, "Failed to load files. Please try again later.")
		return nil
	}

	if len(files) == 0 {
		fmt.Fprintf(a.out, "No files for subject %d. Use 'upload %d' to add one.\n", subjectID, subjectID)
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "%4d  %s\n", f.ID, f.Filename)
	}
	return nil
}

// uploadView prompts for a local path and uploads the file to the subject.
// Extension and size are checked before anything goes on the wire; a
// rejected file is dropped entirely, so the same selection cannot be
// resubmitted by accident.
func (a *App) uploadView(ctx context.Context, params map[string]string) error {
	subjectID, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	path, err := getSimpleText(a.reader, "Path of the file to upload", a.out)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(a.out, "Upload cancelled.")
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, err)
		return nil
	}

	filename := filepath.Base(path)
	if err := validation.Upload(filename, info.Size()); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, err)
		return nil
	}

	created, err := a.api.UploadFile(ctx, subjectID, filename, data)
	if err != nil {
		fmt.Fprintln(a.out, "Upload failed. Please try again later.")
		return nil
	}
	fmt.Fprintf(a.out, "Uploaded %s (file id %d)\n", created.Filename, created.ID)
	return nil
}

// findFile looks a file up in its subject's listing, so edit flows can
// snapshot the current server-side name.
func (a *App) findFile(ctx context.Context, subjectID, fileID int64) (*models.FileItem, error) {
	files, err := a.api.ListFiles(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].ID == fileID {
			return &files[i], nil
		}
	}
	return nil, fmt.Errorf("file %d not found in subject %d", fileID, subjectID)
}

// renameFileView is the inline rename flow: snapshot the current name,
// prompt for a replacement, and keep the snapshot untouched on cancel or on
// a failed save.
func (a *App) renameFileView(ctx context.Context, params map[string]string) error {
	subjectID, err := strconv.ParseInt(params["sid"], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "invalid subject id %q\n", params["sid"])
		return nil
	}
	fileID, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	file, err := a.findFile(ctx, subjectID, fileID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	original := file.Filename

	name, changed, err := InlineEdit(a.reader, "New filename", original, a.out)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintf(a.out, "Rename cancelled, kept %q\n", original)
		return nil
	}

	renamed, err := a.api.RenameFile(ctx, fileID, name)
	if err != nil {
		fmt.Fprintf(a.out, "Rename failed, kept %q\n", original)
		return nil
	}
	fmt.Fprintf(a.out, "Renamed %q to %q\n", original, renamed.Filename)
	return nil
}

// downloadFileView fetches a file's contents and stores them in the
// configured download directory under the server-side filename.
func (a *App) downloadFileView(ctx context.Context, params map[string]string) error {
	subjectID, err := strconv.ParseInt(params["sid"], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "invalid subject id %q\n", params["sid"])
		return nil
	}
	fileID, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	file, err := a.findFile(ctx, subjectID, fileID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	data, err := a.api.DownloadFile(ctx, fileID)
	if err != nil {
		fmt.Fprintln(a.out, "Download failed. Please try again later.")
		return nil
	}

	path, err := filex.WriteDownload(a.config.DownloadDir, file.Filename, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", path, len(data))
	return nil
}

// deleteFileView removes a file after explicit confirmation.
func (a *App) deleteFileView(ctx context.Context, params map[string]string) error {
	id, err := parseID(params)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete file %d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.DeleteFile(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Failed to delete file. Please try again later.")
		return nil
	}
	fmt.Fprintln(a.out, "File deleted.")
	return nil
}
