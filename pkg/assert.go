package pkg

import "joblink"

func AssertNoError(err error) {
	if err != nil {
		joblink.Logger.Error().Err(err).Msg("Error occurred that should not have occurred.")
		panic(err)
	}
}
