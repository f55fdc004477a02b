package command

import (
	commandHandler "recruithub/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewCreateAdminHandler)

type Command struct {
	createAdminCommandHandler *commandHandler.CreateAdminHandler
}

// NewCommand .
func NewCommand(
	createAdminCommandHandler *commandHandler.CreateAdminHandler,
) *Command {
	return &Command{
		createAdminCommandHandler: createAdminCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	createAdmin := &cobra.Command{
		Use:   "create-admin",
		Short: "seed the first ADMIN account",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.createAdminCommandHandler.Run(cmd, args)
		},
	}
	createAdmin.Flags().String("name", "", "display name")
	createAdmin.Flags().String("email", "", "login email")
	createAdmin.Flags().String("password", "", "login password (min 8 chars)")

	rootCmd.AddCommand(createAdmin)
}
