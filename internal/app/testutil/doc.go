// Package testutil provides mocks and fixtures shared by the package tests.
//
// Mocks are built on testify/mock and bound to the calling test with
// m.Test(t), so unexpected calls fail the test instead of panicking:
//
//	transcriber := testutil.NewMockTranscriber(t)
//	transcriber.On("Transcribe", mock.Anything, mock.Anything).
//		Return(&model.Transcription{Text: testutil.SampleTranscript}, nil)
//
// Fixtures cover the end-to-end meeting scenario used across packages.
package testutil
