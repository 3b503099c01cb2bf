package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewBlockHandler,
		func(cmds commands.AuthCommands, cfg config.Config) *api.AuthHandler {
			return api.NewAuthHandler(cmds, cfg.Cookie)
		},
		middleware.NewAuthMiddleware,
		func(rooms *api.RoomHandler, bookings *api.BookingHandler, blocks *api.BlockHandler, auth *api.AuthHandler) handler.Handlers {
			return handler.Handlers{Rooms: rooms, Bookings: bookings, Blocks: blocks, Auth: auth}
		},
	),
	fx.Invoke(reqdto.RegisterValidators),
	fx.Invoke(handler.NewRouter),
)
