package viper

import (
	"fmt"

	"github.com/spf13/viper"
)

func ReadFile(conf any, filePath string) error {
	v, err := read(filePath)
	if err != nil {
		return err
	}
	return v.Unmarshal(conf)
}

// ReadFileWithProfile unmarshals only the section of the file named by profile.
func ReadFileWithProfile(profile string, conf any, filePath string) error {
	v, err := read(filePath)
	if err != nil {
		return err
	}
	sub := v.Sub(profile)
	if sub == nil {
		return fmt.Errorf("profile %s not found in %s", profile, filePath)
	}
	return sub.Unmarshal(conf)
}

func read(filePath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}
