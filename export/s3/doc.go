// Package s3 implements export.Store for AWS S3.
package s3
