// Copyright (c) 2026 Clipstream. All rights reserved.

package blob_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/blob"
	"github.com/clipstream/clipstream/internal/platform/constants"
)

// filePartRequest builds a multipart request carrying one file part.
func filePartRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/channel/create", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return request
}

func fieldMessage(t *testing.T, err error) (string, string) {
	t.Helper()
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	return appError.Details[0].Field, appError.Details[0].Message
}

/*
TestImage verifies a well-formed image part yields a keyed upload.
*/
func TestImage(t *testing.T) {
	request := filePartRequest(t, "channelBanner", "banner.png", "image/png", []byte("png-bytes"))

	upload, err := blob.Image(request, "channelBanner", "banners")
	require.NoError(t, err)
	defer upload.Close()

	assert.True(t, strings.HasPrefix(upload.Key, "banners/"))
	assert.True(t, strings.HasSuffix(upload.Key, ".png"))
	assert.Equal(t, "image/png", upload.ContentType)
	assert.Equal(t, int64(len("png-bytes")), upload.Size)
}

/*
TestImage_MissingField verifies an absent file part names the field.
*/
func TestImage_MissingField(t *testing.T) {
	request := filePartRequest(t, "somethingElse", "banner.png", "image/png", []byte("png-bytes"))

	_, err := blob.Image(request, "channelBanner", "banners")
	require.Error(t, err)

	field, message := fieldMessage(t, err)
	assert.Equal(t, "channelBanner", field)
	assert.Equal(t, "channelBanner file is required", message)
}

/*
TestImage_InvalidType verifies unsupported image formats are rejected.
*/
func TestImage_InvalidType(t *testing.T) {
	request := filePartRequest(t, "channelBanner", "banner.gif", "image/gif", []byte("GIF89a"))

	_, err := blob.Image(request, "channelBanner", "banners")
	require.Error(t, err)

	field, message := fieldMessage(t, err)
	assert.Equal(t, "channelBanner", field)
	assert.Equal(t, "Invalid file type. Allowed types are jpeg, png, and jpg.", message)
}

/*
TestImage_TooLarge verifies the image size ceiling.
*/
func TestImage_TooLarge(t *testing.T) {
	oversized := bytes.Repeat([]byte("a"), int(constants.MaxImageBytes)+1)
	request := filePartRequest(t, "channelBanner", "banner.png", "image/png", oversized)

	_, err := blob.Image(request, "channelBanner", "banners")
	require.Error(t, err)

	_, message := fieldMessage(t, err)
	assert.Equal(t, "File size must be less than 5MB.", message)
}

/*
TestVideo verifies video intake accepts supported containers and rejects
the rest with the type message.
*/
func TestVideo(t *testing.T) {
	request := filePartRequest(t, "videoFile", "clip.mp4", "video/mp4", []byte("mp4-bytes"))

	upload, err := blob.Video(request, "videoFile", "videos")
	require.NoError(t, err)
	defer upload.Close()
	assert.True(t, strings.HasSuffix(upload.Key, ".mp4"))

	request = filePartRequest(t, "videoFile", "clip.avi", "video/x-msvideo", []byte("avi-bytes"))

	_, err = blob.Video(request, "videoFile", "videos")
	require.Error(t, err)

	field, message := fieldMessage(t, err)
	assert.Equal(t, "videoFile", field)
	assert.Equal(t, "Invalid file type. Allowed types are mp4, webm, and ogg.", message)
}
