package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		if err := viper.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				log.Fatalln(err)
			}
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
	})

	return config
}
